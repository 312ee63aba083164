//go:generate mockery --name TopicRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository interface {
	// CreateBatch はコース作成時に生成されたトピックをまとめて挿入します
	CreateBatch(ctx context.Context, tx *gorm.DB, topics []*model.Topic) error
	// FindByID は所有者判定のため親コースをPreloadして返します
	FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error)
	FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.Topic, error)
	FindByCourseAndDate(ctx context.Context, db *gorm.DB, courseID uuid.UUID, date time.Time) ([]*model.Topic, error)
	Update(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, updates map[string]interface{}) error
}

type gormTopicRepository struct{}

func NewGormTopicRepository() TopicRepository {
	return &gormTopicRepository{}
}

func (r *gormTopicRepository) CreateBatch(ctx context.Context, tx *gorm.DB, topics []*model.Topic) error {
	logger := middleware.GetLogger(ctx)
	if len(topics) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).CreateInBatches(topics, 100)
	if result.Error != nil {
		logger.Error("Error creating topics in DB",
			"error", result.Error,
			"course_id", topics[0].CourseID.String(),
			"count", len(topics),
		)
		return fmt.Errorf("gormTopicRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormTopicRepository) FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topic model.Topic
	result := db.WithContext(ctx).Preload("Course").Where("topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding topic by ID in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormTopicRepository.FindByID: %w", result.Error)
	}
	return &topic, nil
}

func (r *gormTopicRepository) FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.Topic
	result := db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("assigned_date ASC").Order("sort_order ASC").
		Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding topics by course in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormTopicRepository.FindByCourse: %w", result.Error)
	}
	return topics, nil
}

func (r *gormTopicRepository) FindByCourseAndDate(ctx context.Context, db *gorm.DB, courseID uuid.UUID, date time.Time) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.Topic
	// assigned_date はその日の0時で保存している。[date, date+1day) で検索する。
	nextDay := date.AddDate(0, 0, 1)
	result := db.WithContext(ctx).
		Where("course_id = ? AND assigned_date >= ? AND assigned_date < ?", courseID, date, nextDay).
		Order("sort_order ASC").
		Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding topics by date in DB",
			"error", result.Error,
			"course_id", courseID.String(),
			"date", date.Format("2006-01-02"),
		)
		return nil, fmt.Errorf("gormTopicRepository.FindByCourseAndDate: %w", result.Error)
	}
	return topics, nil
}

func (r *gormTopicRepository) Update(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Topic{}).Where("topic_id = ?", topicID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return fmt.Errorf("gormTopicRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
