// internal/service/topic_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_micro_learn/internal/model"
	"go_micro_learn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_topicService_GetTopicsByDate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockCourseRepo := new(mocks.CourseRepository)
	mockTopicRepo := new(mocks.TopicRepository)
	topicService := NewTopicService(db, mockCourseRepo, mockTopicRepo)

	userID := uuid.New()
	courseID := uuid.New()
	today := StartOfDay(time.Now())
	activeCourse := &model.Course{CourseID: courseID, UserID: userID, IsActive: true}
	todayTopics := []*model.Topic{
		{TopicID: uuid.New(), CourseID: courseID, Title: "t1", AssignedDate: today},
		{TopicID: uuid.New(), CourseID: courseID, Title: "t2", AssignedDate: today},
	}

	tests := []struct {
		name       string
		date       time.Time
		setupMock  func()
		wantErr    error
		wantTopics []*model.Topic
	}{
		{
			name: "正常系: 今日のトピックを取得",
			date: today,
			setupMock: func() {
				mockCourseRepo.On("FindActiveByUser", ctx, db, userID).Return(activeCourse, nil).Once()
				mockTopicRepo.On("FindByCourseAndDate", ctx, db, courseID, today).Return(todayTopics, nil).Once()
			},
			wantTopics: todayTopics,
		},
		{
			name: "正常系: 有効なコースが無い場合は空スライス",
			date: today,
			setupMock: func() {
				mockCourseRepo.On("FindActiveByUser", ctx, db, userID).Return(nil, model.ErrNotFound).Once()
			},
			wantTopics: []*model.Topic{},
		},
		{
			name: "異常系: 未来日はリポジトリに触れず403",
			date: today.AddDate(0, 0, 1),
			setupMock: func() {
				// 何も呼ばれない
			},
			wantErr: model.ErrForbidden,
		},
		{
			name: "異常系: トピック検索でDBエラー",
			date: today,
			setupMock: func() {
				mockCourseRepo.On("FindActiveByUser", ctx, db, userID).Return(activeCourse, nil).Once()
				mockTopicRepo.On("FindByCourseAndDate", ctx, db, courseID, today).Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseRepo.Mock = mock.Mock{}
			mockTopicRepo.Mock = mock.Mock{}
			tt.setupMock()

			topics, err := topicService.GetTopicsByDate(ctx, userID, tt.date)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTopics, topics)
			}

			mockCourseRepo.AssertExpectations(t)
			mockTopicRepo.AssertExpectations(t)
		})
	}
}

func Test_topicService_GetCourseTopics(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockCourseRepo := new(mocks.CourseRepository)
	mockTopicRepo := new(mocks.TopicRepository)
	topicService := NewTopicService(db, mockCourseRepo, mockTopicRepo)

	userID := uuid.New()
	courseID := uuid.New()
	course := &model.Course{CourseID: courseID, UserID: userID}
	today := StartOfDay(time.Now())

	t.Run("正常系: 未来日のトピックは本文とソースを伏せて返す", func(t *testing.T) {
		mockCourseRepo.Mock = mock.Mock{}
		mockTopicRepo.Mock = mock.Mock{}
		topics := []*model.Topic{
			{TopicID: uuid.New(), Title: "past", Content: "visible", Sources: []string{"https://go.dev"}, AssignedDate: today.AddDate(0, 0, -1)},
			{TopicID: uuid.New(), Title: "today", Content: "visible too", AssignedDate: today},
			{TopicID: uuid.New(), Title: "future", Description: "teaser", Content: "hidden", Sources: []string{"https://example.com"}, AssignedDate: today.AddDate(0, 0, 1)},
		}
		mockCourseRepo.On("FindByID", ctx, db, userID, courseID).Return(course, nil).Once()
		mockTopicRepo.On("FindByCourse", ctx, db, courseID).Return(topics, nil).Once()

		got, err := topicService.GetCourseTopics(ctx, userID, courseID)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "visible", got[0].Content)
		assert.Equal(t, "visible too", got[1].Content)
		// 未来分はタイトルと説明だけ残る
		assert.Equal(t, "future", got[2].Title)
		assert.Equal(t, "teaser", got[2].Description)
		assert.Empty(t, got[2].Content)
		assert.Nil(t, got[2].Sources)

		mockCourseRepo.AssertExpectations(t)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他人のコースはNotFound", func(t *testing.T) {
		mockCourseRepo.Mock = mock.Mock{}
		mockTopicRepo.Mock = mock.Mock{}
		mockCourseRepo.On("FindByID", ctx, db, userID, courseID).Return(nil, model.ErrNotFound).Once()

		got, err := topicService.GetCourseTopics(ctx, userID, courseID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, got)
		mockCourseRepo.AssertExpectations(t)
	})
}

func Test_topicService_GetTopic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockCourseRepo := new(mocks.CourseRepository)
	mockTopicRepo := new(mocks.TopicRepository)
	topicService := NewTopicService(db, mockCourseRepo, mockTopicRepo)

	userID := uuid.New()
	otherUserID := uuid.New()
	topicID := uuid.New()
	today := StartOfDay(time.Now())

	ownedTopic := func(assigned time.Time) *model.Topic {
		return &model.Topic{
			TopicID:      topicID,
			Title:        "t",
			Content:      "c",
			AssignedDate: assigned,
			Course:       &model.Course{CourseID: uuid.New(), UserID: userID},
		}
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "正常系: 当日のトピックを取得",
			setupMock: func() {
				mockTopicRepo.On("FindByID", ctx, db, topicID).Return(ownedTopic(today), nil).Once()
			},
		},
		{
			name: "正常系: 過去のトピックも取得できる",
			setupMock: func() {
				mockTopicRepo.On("FindByID", ctx, db, topicID).Return(ownedTopic(today.AddDate(0, 0, -3)), nil).Once()
			},
		},
		{
			name: "異常系: 未来日のトピックは403",
			setupMock: func() {
				mockTopicRepo.On("FindByID", ctx, db, topicID).Return(ownedTopic(today.AddDate(0, 0, 2)), nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
		{
			name: "異常系: 他人のトピックは403",
			setupMock: func() {
				foreign := ownedTopic(today)
				foreign.Course.UserID = otherUserID
				mockTopicRepo.On("FindByID", ctx, db, topicID).Return(foreign, nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
		{
			name: "異常系: 存在しないトピックは404",
			setupMock: func() {
				mockTopicRepo.On("FindByID", ctx, db, topicID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTopicRepo.Mock = mock.Mock{}
			tt.setupMock()

			topic, err := topicService.GetTopic(ctx, userID, topicID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, topic)
			} else {
				require.NoError(t, err)
				require.NotNil(t, topic)
				assert.Equal(t, topicID, topic.TopicID)
			}

			mockTopicRepo.AssertExpectations(t)
		})
	}
}

func Test_topicService_CompleteTopic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockCourseRepo := new(mocks.CourseRepository)
	mockTopicRepo := new(mocks.TopicRepository)
	topicService := NewTopicService(db, mockCourseRepo, mockTopicRepo)

	userID := uuid.New()
	topicID := uuid.New()
	today := StartOfDay(time.Now())

	t.Run("正常系: 完了フラグと完了日時が入る", func(t *testing.T) {
		mockTopicRepo.Mock = mock.Mock{}
		topic := &model.Topic{
			TopicID:      topicID,
			AssignedDate: today,
			Course:       &model.Course{UserID: userID},
		}
		mockTopicRepo.On("FindByID", ctx, db, topicID).Return(topic, nil).Once()
		mockTopicRepo.On("Update", ctx, db, topicID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			completed, ok := updates["completed"].(bool)
			_, hasAt := updates["completed_at"]
			return ok && completed && hasAt
		})).Return(nil).Once()

		got, err := topicService.CompleteTopic(ctx, userID, topicID)

		require.NoError(t, err)
		assert.True(t, got.Completed)
		require.NotNil(t, got.CompletedAt)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("正常系: 完了済みでも再実行はエラーにしない", func(t *testing.T) {
		mockTopicRepo.Mock = mock.Mock{}
		past := time.Now().Add(-24 * time.Hour)
		topic := &model.Topic{
			TopicID:      topicID,
			AssignedDate: today,
			Completed:    true,
			CompletedAt:  &past,
			Course:       &model.Course{UserID: userID},
		}
		mockTopicRepo.On("FindByID", ctx, db, topicID).Return(topic, nil).Once()
		mockTopicRepo.On("Update", ctx, db, topicID, mock.AnythingOfType("map[string]interface {}")).Return(nil).Once()

		got, err := topicService.CompleteTopic(ctx, userID, topicID)

		require.NoError(t, err)
		assert.True(t, got.Completed)
		// completed_at は打ち直される
		assert.True(t, got.CompletedAt.After(past))
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("異常系: 未来日のトピックは完了できない", func(t *testing.T) {
		mockTopicRepo.Mock = mock.Mock{}
		topic := &model.Topic{
			TopicID:      topicID,
			AssignedDate: today.AddDate(0, 0, 1),
			Course:       &model.Course{UserID: userID},
		}
		mockTopicRepo.On("FindByID", ctx, db, topicID).Return(topic, nil).Once()

		got, err := topicService.CompleteTopic(ctx, userID, topicID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, got)
		mockTopicRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
