//go:generate mockery --name NoteService --output ./mocks --outpkg mocks --case=underscore
// internal/service/note_service.go
package service

import (
	"context"
	"errors"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteService interface {
	// GetNoteByTopic はメモが無い場合 (nil, nil) を返します
	GetNoteByTopic(ctx context.Context, userID, topicID uuid.UUID) (*model.Note, error)
	CreateNote(ctx context.Context, userID uuid.UUID, req *model.PostNoteRequest) (*model.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *model.PatchNoteRequest) (*model.Note, error)
}

type noteService struct {
	db        *gorm.DB
	noteRepo  repository.NoteRepository
	topicRepo repository.TopicRepository
}

func NewNoteService(db *gorm.DB, noteRepo repository.NoteRepository, topicRepo repository.TopicRepository) NoteService {
	return &noteService{
		db:        db,
		noteRepo:  noteRepo,
		topicRepo: topicRepo,
	}
}

func (s *noteService) GetNoteByTopic(ctx context.Context, userID, topicID uuid.UUID) (*model.Note, error) {
	// 所有者チェック。日付ゲートはかけない (過去メモの振り返りを妨げない)
	if _, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, false); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.FindByTopic(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, model.ErrInternalServer
	}
	return note, nil
}

func (s *noteService) CreateNote(ctx context.Context, userID uuid.UUID, req *model.PostNoteRequest) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, req.TopicID, false); err != nil {
		return nil, err
	}

	note := &model.Note{
		NoteID:  uuid.New(),
		TopicID: req.TopicID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.noteRepo.Create(ctx, s.db, note); err != nil {
		// トピックごとにメモは1件。2件目はPATCHで既存を更新してもらう。
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Note already exists for topic", "topic_id", req.TopicID.String())
			return nil, model.NewAppError("NOTE_ALREADY_EXISTS", "このトピックには既にメモがあります。更新にはPATCHを使用してください。", "topic_id", model.ErrConflict)
		}
		logger.Error("Failed to create note", "error", err, "topic_id", req.TopicID.String())
		return nil, model.ErrInternalServer
	}

	logger.Info("Note created", "note_id", note.NoteID, "topic_id", req.TopicID.String())
	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *model.PatchNoteRequest) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)

	note, err := s.noteRepo.FindByID(ctx, s.db, noteID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOTE_NOT_FOUND", "メモが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}
	if note.UserID != userID {
		logger.Warn("Note access denied: not owner", "note_id", noteID.String(), "user_id", userID.String())
		return nil, model.NewAppError("FORBIDDEN", "このメモにはアクセスできません。", "", model.ErrForbidden)
	}

	updates := map[string]interface{}{"content": req.Content}
	if err := s.noteRepo.Update(ctx, s.db, noteID, updates); err != nil {
		logger.Error("Failed to update note", "error", err, "note_id", noteID.String())
		return nil, model.ErrInternalServer
	}

	note.Content = req.Content
	return note, nil
}
