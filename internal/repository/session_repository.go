//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"

	"gorm.io/gorm"
)

// SessionRepository は学習セッションの追記専用ログを扱います。
// 読み取りAPIは存在しない (監査用)。
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.LearningSession) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.LearningSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating learning session in DB",
			"error", result.Error,
			"topic_id", session.TopicID.String(),
			"mode", string(session.Mode),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}
