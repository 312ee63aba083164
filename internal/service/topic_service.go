//go:generate mockery --name TopicService --output ./mocks --outpkg mocks --case=underscore
// internal/service/topic_service.go
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

type TopicService interface {
	// GetTopicsByDate は有効なコースが無い場合は空スライスを返します
	GetTopicsByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*model.Topic, error)
	GetCourseTopics(ctx context.Context, userID, courseID uuid.UUID) ([]*model.Topic, error)
	GetTopic(ctx context.Context, userID, topicID uuid.UUID) (*model.Topic, error)
	CompleteTopic(ctx context.Context, userID, topicID uuid.UUID) (*model.Topic, error)
}

type topicService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	topicRepo  repository.TopicRepository
}

func NewTopicService(db *gorm.DB, courseRepo repository.CourseRepository, topicRepo repository.TopicRepository) TopicService {
	return &topicService{
		db:         db,
		courseRepo: courseRepo,
		topicRepo:  topicRepo,
	}
}

// loadOwnedTopic はトピックを取得し、所有者チェックと (必要なら) 日付ゲートを適用します。
// 他ユーザーのトピックと未来日のトピックはどちらも403で隠す。
// 学習系・メモ系サービスからも共用される。
func loadOwnedTopic(ctx context.Context, db *gorm.DB, topicRepo repository.TopicRepository, userID, topicID uuid.UUID, enforceDateGate bool) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	topic, err := topicRepo.FindByID(ctx, db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}

	if topic.Course == nil || topic.Course.UserID != userID {
		logger.Warn("Topic access denied: not owner", "topic_id", topicID.String(), "user_id", userID.String())
		return nil, model.NewAppError("FORBIDDEN", "このトピックにはアクセスできません。", "", model.ErrForbidden)
	}

	if enforceDateGate {
		today := StartOfDay(time.Now())
		if StartOfDay(topic.AssignedDate).After(today) {
			logger.Warn("Topic access denied: assigned date is in the future",
				"topic_id", topicID.String(),
				"assigned_date", topic.AssignedDate,
			)
			return nil, model.NewAppError("TOPIC_LOCKED", "このトピックはまだ公開されていません。", "", model.ErrForbidden)
		}
	}

	return topic, nil
}

func (s *topicService) GetTopicsByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	// 未来日の参照はクライアントの表示都合に関わらずサーバー側で拒否する
	today := StartOfDay(time.Now())
	if StartOfDay(date).After(today) {
		return nil, model.NewAppError("TOPIC_LOCKED", "未来の日付のトピックはまだ閲覧できません。", "date", model.ErrForbidden)
	}

	course, err := s.courseRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 有効なコースが無ければその日のトピックも無い
			return []*model.Topic{}, nil
		}
		logger.Error("Error finding active course", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}

	topics, err := s.topicRepo.FindByCourseAndDate(ctx, s.db, course.CourseID, StartOfDay(date))
	if err != nil {
		logger.Error("Error finding topics by date", "error", err, "course_id", course.CourseID.String())
		return nil, model.ErrInternalServer
	}
	return topics, nil
}

// GetCourseTopics はコース全体の一覧を返します。カリキュラムの見通しのために
// 未来日のトピックも含むが、本文とソースは空にして返す (タイトルと説明のみ)。
func (s *topicService) GetCourseTopics(ctx context.Context, userID, courseID uuid.UUID) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	// 所有者チェックを兼ねる (他人のコースはErrNotFound)
	course, err := s.courseRepo.FindByID(ctx, s.db, userID, courseID)
	if err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.FindByCourse(ctx, s.db, course.CourseID)
	if err != nil {
		logger.Error("Error finding topics by course", "error", err, "course_id", courseID.String())
		return nil, model.ErrInternalServer
	}

	today := StartOfDay(time.Now())
	for _, t := range topics {
		if StartOfDay(t.AssignedDate).After(today) {
			t.Content = ""
			t.Sources = nil
		}
	}
	return topics, nil
}

func (s *topicService) GetTopic(ctx context.Context, userID, topicID uuid.UUID) (*model.Topic, error) {
	return loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
}

// CompleteTopic は完了フラグを立てます。既に完了済みでもエラーにはせず、
// completed_at を打ち直す。
func (s *topicService) CompleteTopic(ctx context.Context, userID, topicID uuid.UUID) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	topic, err := loadOwnedTopic(ctx, s.db, s.topicRepo, userID, topicID, true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"completed":    true,
		"completed_at": now,
	}
	if err := s.topicRepo.Update(ctx, s.db, topic.TopicID, updates); err != nil {
		logger.Error("Error marking topic completed", "error", err, "topic_id", topicID.String())
		return nil, model.ErrInternalServer
	}

	topic.Completed = true
	topic.CompletedAt = &now
	logger.Info("Topic completed", "topic_id", topicID.String(), "user_id", userID.String())
	return topic, nil
}
