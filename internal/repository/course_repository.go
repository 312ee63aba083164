//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
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

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *model.Course) error
	// DeactivateByUser はユーザーの有効なコースをすべて無効化します。
	// 新コース作成と同一トランザクション内で呼ぶこと。
	DeactivateByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Course, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Course, error)
	FindByID(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.Course, error)
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, tx *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(course)
	if result.Error != nil {
		logger.Error("Error creating course in DB",
			"error", result.Error,
			"user_id", course.UserID.String(),
			"course_name", course.CourseName,
		)
		return fmt.Errorf("gormCourseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) DeactivateByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Course{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false)
	if result.Error != nil {
		logger.Error("Error deactivating courses in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormCourseRepository.DeactivateByUser: %w", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	result := db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active course in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormCourseRepository.FindActiveByUser: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var courses []*model.Course
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&courses)
	if result.Error != nil {
		logger.Error("Error finding courses by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormCourseRepository.FindByUser: %w", result.Error)
	}
	return courses, nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	// 所有者でスコープして検索する。他ユーザーのコースは存在ごと隠す。
	result := db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}
