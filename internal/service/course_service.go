//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --case=underscore
// internal/service/course_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService interface {
	CreateCourse(ctx context.Context, userID uuid.UUID, req *model.CreateCourseRequest) (*model.Course, error)
	// GetActiveCourse は有効なコースが無い場合 (nil, nil) を返します
	GetActiveCourse(ctx context.Context, userID uuid.UUID) (*model.Course, error)
	ListCourses(ctx context.Context, userID uuid.UUID) ([]*model.Course, error)
	GetCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.Course, error)
}

type courseService struct {
	db           *gorm.DB // トランザクション用にDB接続を持つ
	courseRepo   repository.CourseRepository
	topicRepo    repository.TopicRepository
	generator    ContentGenerator
	numberOfDays int
}

func NewCourseService(db *gorm.DB, courseRepo repository.CourseRepository, topicRepo repository.TopicRepository, generator ContentGenerator, numberOfDays int) CourseService {
	return &courseService{
		db:           db,
		courseRepo:   courseRepo,
		topicRepo:    topicRepo,
		generator:    generator,
		numberOfDays: numberOfDays,
	}
}

// CreateCourse はトピック生成に成功した場合のみコースを永続化します。
// 生成は失敗しうる外部呼び出しなので先に行い、DB書き込みは1トランザクションに
// まとめる。途中で失敗したコース行やトピック断片は残らない。
func (s *courseService) CreateCourse(ctx context.Context, userID uuid.UUID, req *model.CreateCourseRequest) (*model.Course, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "course_name", req.CourseName)

	// 1. トピックを生成 (DBにはまだ触らない)
	generated, err := s.generator.GenerateTopics(ctx, req.CourseName, req.FocusArea, req.TopicsPerDay, s.numberOfDays)
	if err != nil {
		var malformed *model.MalformedOutputError
		if errors.As(err, &malformed) {
			logger.Error("Topic generation returned malformed output", "reason", malformed.Reason)
			return nil, err
		}
		logger.Error("Topic generation failed", "error", err)
		return nil, model.NewAppError("GENERATION_FAILED", "トピックの生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrGeneration)
	}

	// 2. 開始日 (今日) から日付を割り当てる
	course := &model.Course{
		CourseID:     uuid.New(),
		UserID:       userID,
		CourseName:   req.CourseName,
		FocusArea:    req.FocusArea,
		TopicsPerDay: req.TopicsPerDay,
		IsActive:     true,
	}
	topics := ScheduleTopics(generated, course.CourseID, req.TopicsPerDay, time.Now())

	// 3. 旧コースの無効化と新コースの保存を1トランザクションで行う
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.courseRepo.DeactivateByUser(ctx, tx, userID); err != nil {
			logger.Error("Failed to deactivate previous courses in transaction", "error", err)
			return model.ErrInternalServer
		}
		if err := s.courseRepo.Create(ctx, tx, course); err != nil {
			logger.Error("Failed to create course in transaction", "error", err)
			return model.ErrInternalServer
		}
		if err := s.topicRepo.CreateBatch(ctx, tx, topics); err != nil {
			logger.Error("Failed to create topics in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Course created", "course_id", course.CourseID, "topic_count", len(topics))
	return course, nil
}

func (s *courseService) GetActiveCourse(ctx context.Context, userID uuid.UUID) (*model.Course, error) {
	course, err := s.courseRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 有効なコースが無いのはエラーではない
			return nil, nil
		}
		return nil, model.ErrInternalServer
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context, userID uuid.UUID) ([]*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	courses, err := s.courseRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing courses", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.Course, error) {
	// FindByIDはuser_idで絞り込むため、他人のコースはErrNotFoundになる
	course, err := s.courseRepo.FindByID(ctx, s.db, userID, courseID)
	if err != nil {
		return nil, err
	}
	return course, nil
}
