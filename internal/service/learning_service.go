//go:generate mockery --name LearningService --output ./mocks --outpkg mocks --case=underscore
// internal/service/learning_service.go
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LearningService interface {
	Chat(ctx context.Context, userID, topicID uuid.UUID, req *model.ChatRequest) (*model.ChatMessage, error)
	GetGame(ctx context.Context, userID, topicID uuid.UUID) (*model.GameResponse, error)
	GetAudio(ctx context.Context, userID, topicID uuid.UUID) (*model.AudioResponse, error)
	GetPodcast(ctx context.Context, userID, topicID uuid.UUID) (*model.AudioResponse, error)
	GetVideo(ctx context.Context, userID, topicID uuid.UUID) (*model.VideoResponse, error)
	GetComic(ctx context.Context, userID, topicID uuid.UUID) (*model.ComicResponse, error)
	BuildCustom(ctx context.Context, userID, topicID uuid.UUID, req *model.CustomRequest) (*model.CustomResponse, error)
}

type learningService struct {
	db          *gorm.DB
	topicRepo   repository.TopicRepository
	convRepo    repository.ConversionRepository
	sessionRepo repository.SessionRepository
	generator   ContentGenerator
}

func NewLearningService(db *gorm.DB, topicRepo repository.TopicRepository, convRepo repository.ConversionRepository, sessionRepo repository.SessionRepository, generator ContentGenerator) LearningService {
	return &learningService{
		db:          db,
		topicRepo:   topicRepo,
		convRepo:    convRepo,
		sessionRepo: sessionRepo,
		generator:   generator,
	}
}

// Chat はキャッシュせず毎回生成します。会話履歴はクライアントが全文を
// 送り直す方式なので、サーバー側に会話状態は持たない。
func (s *learningService) Chat(ctx context.Context, userID, topicID uuid.UUID, req *model.ChatRequest) (*model.ChatMessage, error) {
	logger := middleware.GetLogger(ctx)

	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}

	reply, err := s.generator.Chat(ctx, topic.Content, req.Messages)
	if err != nil {
		logger.Error("Chat generation failed", "error", err, "topic_id", topicID.String())
		return nil, model.NewAppError("GENERATION_FAILED", "応答の生成に失敗しました。", "", model.ErrGeneration)
	}

	// 学習ログにはやり取りの全文を残す
	transcript := append(append([]model.ChatMessage{}, req.Messages...), *reply)
	s.recordSession(ctx, userID, topicID, model.ModeChat, transcript)

	return reply, nil
}

// GetGame はトピック×モード単位でキャッシュします。キャッシュミス時のみ生成し、
// 同時リクエストで一意制約に負けた側は勝者の行を読み直して返す。
func (s *learningService) GetGame(ctx context.Context, userID, topicID uuid.UUID) (*model.GameResponse, error) {
	logger := middleware.GetLogger(ctx)

	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}

	// 1. キャッシュ確認
	cached, err := s.convRepo.FindCompleted(ctx, s.db, topicID, model.ModeGame)
	if err == nil {
		logger.Debug("Game served from cache", "topic_id", topicID.String())
		return &model.GameResponse{GameHTML: cached.Content, GameURL: cached.URL}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInternalServer
	}

	// 2. 生成
	gameHTML, err := s.generator.GenerateGame(ctx, topic.Title, topic.Content)
	if err != nil {
		var malformed *model.MalformedOutputError
		if errors.As(err, &malformed) {
			logger.Error("Game generation returned malformed output", "reason", malformed.Reason)
			return nil, err
		}
		logger.Error("Game generation failed", "error", err, "topic_id", topicID.String())
		return nil, model.NewAppError("GENERATION_FAILED", "ゲームの生成に失敗しました。", "", model.ErrGeneration)
	}
	gameURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(gameHTML))

	// 3. キャッシュに保存。一意制約で負けたら勝者の行を採用する。
	conversion := &model.MediaConversion{
		ConversionID: uuid.New(),
		TopicID:      topicID,
		Mode:         model.ModeGame,
		Content:      gameHTML,
		URL:          gameURL,
		Status:       model.ConversionCompleted,
	}
	if err := s.convRepo.Create(ctx, s.db, conversion); err != nil {
		if errors.Is(err, model.ErrConflict) {
			winner, ferr := s.convRepo.FindCompleted(ctx, s.db, topicID, model.ModeGame)
			if ferr != nil {
				logger.Error("Failed to fetch winning conversion after conflict", "error", ferr, "topic_id", topicID.String())
				return nil, model.ErrInternalServer
			}
			logger.Debug("Lost conversion race, serving winner", "topic_id", topicID.String())
			s.recordSession(ctx, userID, topicID, model.ModeGame, nil)
			return &model.GameResponse{GameHTML: winner.Content, GameURL: winner.URL}, nil
		}
		logger.Error("Failed to cache game conversion", "error", err, "topic_id", topicID.String())
		return nil, model.ErrInternalServer
	}

	s.recordSession(ctx, userID, topicID, model.ModeGame, nil)
	return &model.GameResponse{GameHTML: gameHTML, GameURL: gameURL}, nil
}

func (s *learningService) GetAudio(ctx context.Context, userID, topicID uuid.UUID) (*model.AudioResponse, error) {
	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}
	audioURL, err := s.generator.ConvertToAudio(ctx, topic.Content)
	if err != nil {
		return nil, model.NewAppError("GENERATION_FAILED", "音声の生成に失敗しました。", "", model.ErrGeneration)
	}
	s.recordSession(ctx, userID, topicID, model.ModeAudio, nil)
	return &model.AudioResponse{AudioURL: audioURL}, nil
}

func (s *learningService) GetPodcast(ctx context.Context, userID, topicID uuid.UUID) (*model.AudioResponse, error) {
	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}
	audioURL, err := s.generator.ConvertToPodcast(ctx, topic.Content)
	if err != nil {
		return nil, model.NewAppError("GENERATION_FAILED", "ポッドキャストの生成に失敗しました。", "", model.ErrGeneration)
	}
	s.recordSession(ctx, userID, topicID, model.ModePodcast, nil)
	return &model.AudioResponse{AudioURL: audioURL}, nil
}

func (s *learningService) GetVideo(ctx context.Context, userID, topicID uuid.UUID) (*model.VideoResponse, error) {
	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}
	videoURL, err := s.generator.ConvertToVideo(ctx, topic.Title, topic.Content)
	if err != nil {
		return nil, model.NewAppError("GENERATION_FAILED", "動画の生成に失敗しました。", "", model.ErrGeneration)
	}
	s.recordSession(ctx, userID, topicID, model.ModeVideo, nil)
	return &model.VideoResponse{VideoURL: videoURL}, nil
}

func (s *learningService) GetComic(ctx context.Context, userID, topicID uuid.UUID) (*model.ComicResponse, error) {
	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}
	panels, err := s.generator.ConvertToComic(ctx, topic.Title, topic.Content)
	if err != nil {
		return nil, model.NewAppError("GENERATION_FAILED", "コミックの生成に失敗しました。", "", model.ErrGeneration)
	}
	s.recordSession(ctx, userID, topicID, model.ModeComic, nil)
	return &model.ComicResponse{ComicURL: "", Panels: panels}, nil
}

// BuildCustom はユーザー記述のカスタム教材を生成します。説明文が毎回違うため
// キャッシュはしない。
func (s *learningService) BuildCustom(ctx context.Context, userID, topicID uuid.UUID, req *model.CustomRequest) (*model.CustomResponse, error) {
	logger := middleware.GetLogger(ctx)

	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}

	html, err := s.generator.BuildCustomFeature(ctx, topic.Content, req.Description)
	if err != nil {
		var malformed *model.MalformedOutputError
		if errors.As(err, &malformed) {
			logger.Error("Custom feature generation returned malformed output", "reason", malformed.Reason)
			return nil, err
		}
		logger.Error("Custom feature generation failed", "error", err, "topic_id", topicID.String())
		return nil, model.NewAppError("GENERATION_FAILED", "カスタム教材の生成に失敗しました。", "", model.ErrGeneration)
	}

	s.recordSession(ctx, userID, topicID, model.ModeCustom, map[string]string{
		"description": req.Description,
		"content":     html,
	})
	return &model.CustomResponse{Content: html}, nil
}

// recordSession は学習ログを追記します。ログ書き込みの失敗で学習操作自体を
// 失敗させたくないので、エラーは記録するだけで握りつぶす。
func (s *learningService) recordSession(ctx context.Context, userID, topicID uuid.UUID, mode model.LearningMode, payload interface{}) {
	logger := middleware.GetLogger(ctx)

	var data datatypes.JSON
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			logger.Warn("Failed to marshal session payload", "error", err, "mode", string(mode))
		} else {
			data = datatypes.JSON(b)
		}
	}

	session := &model.LearningSession{
		SessionID: uuid.New(),
		TopicID:   topicID,
		UserID:    userID,
		Mode:      mode,
		Data:      data,
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Warn("Failed to record learning session", "error", err, "topic_id", topicID.String(), "mode", string(mode))
	}
}
