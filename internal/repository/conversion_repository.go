//go:generate mockery --name ConversionRepository --output ./mocks --outpkg mocks --case=underscore
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

type ConversionRepository interface {
	// FindCompleted は (topic, mode) の完了済みキャッシュを返します
	FindCompleted(ctx context.Context, db *gorm.DB, topicID uuid.UUID, mode model.LearningMode) (*model.MediaConversion, error)
	// Create は一意制約違反時に model.ErrConflict を返します。
	// 呼び出し側は FindCompleted で勝者の行を取り直すこと。
	Create(ctx context.Context, tx *gorm.DB, conversion *model.MediaConversion) error
}

type gormConversionRepository struct{}

func NewGormConversionRepository() ConversionRepository {
	return &gormConversionRepository{}
}

func (r *gormConversionRepository) FindCompleted(ctx context.Context, db *gorm.DB, topicID uuid.UUID, mode model.LearningMode) (*model.MediaConversion, error) {
	logger := middleware.GetLogger(ctx)
	var conversion model.MediaConversion
	result := db.WithContext(ctx).
		Where("topic_id = ? AND mode = ? AND status = ?", topicID, mode, model.ConversionCompleted).
		First(&conversion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding media conversion in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
			"mode", string(mode),
		)
		return nil, fmt.Errorf("gormConversionRepository.FindCompleted: %w", result.Error)
	}
	return &conversion, nil
}

func (r *gormConversionRepository) Create(ctx context.Context, tx *gorm.DB, conversion *model.MediaConversion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(conversion)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			// 同時リクエストが先に同じ (topic, mode) を作成した
			return model.ErrConflict
		}
		logger.Error("Error creating media conversion in DB",
			"error", result.Error,
			"topic_id", conversion.TopicID.String(),
			"mode", string(conversion.Mode),
		)
		return fmt.Errorf("gormConversionRepository.Create: %w", result.Error)
	}
	return nil
}
