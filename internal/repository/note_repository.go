//go:generate mockery --name NoteRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.Note) error
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Note, error)
	FindByID(ctx context.Context, db *gorm.DB, noteID uuid.UUID) (*model.Note, error)
	Update(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, updates map[string]interface{}) error
}

type gormNoteRepository struct{}

func NewGormNoteRepository() NoteRepository {
	return &gormNoteRepository{}
}

func (r *gormNoteRepository) Create(ctx context.Context, tx *gorm.DB, note *model.Note) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(note)
	if result.Error != nil {
		// topic_id の一意制約違反 = 既にメモが存在する
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating note in DB",
			"error", result.Error,
			"topic_id", note.TopicID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormNoteRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var note model.Note
	result := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding note by topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByTopic: %w", result.Error)
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByID(ctx context.Context, db *gorm.DB, noteID uuid.UUID) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var note model.Note
	result := db.WithContext(ctx).Where("note_id = ?", noteID).First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding note by ID in DB",
			"error", result.Error,
			"note_id", noteID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByID: %w", result.Error)
	}
	return &note, nil
}

func (r *gormNoteRepository) Update(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Note{}).Where("note_id = ?", noteID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating note in DB",
			"error", result.Error,
			"note_id", noteID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
