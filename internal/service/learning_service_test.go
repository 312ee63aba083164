// internal/service/learning_service_test.go
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go_micro_learn/internal/model"
	"go_micro_learn/internal/repository/mocks"
	svcmocks "go_micro_learn/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type learningTestDeps struct {
	topicRepo   *mocks.TopicRepository
	convRepo    *mocks.ConversionRepository
	sessionRepo *mocks.SessionRepository
	generator   *svcmocks.ContentGenerator
	service     LearningService
}

func newLearningTestDeps() *learningTestDeps {
	d := &learningTestDeps{
		topicRepo:   new(mocks.TopicRepository),
		convRepo:    new(mocks.ConversionRepository),
		sessionRepo: new(mocks.SessionRepository),
		generator:   new(svcmocks.ContentGenerator),
	}
	d.service = NewLearningService(setupTestDB(), d.topicRepo, d.convRepo, d.sessionRepo, d.generator)
	return d
}

func (d *learningTestDeps) reset() {
	d.topicRepo.Mock = mock.Mock{}
	d.convRepo.Mock = mock.Mock{}
	d.sessionRepo.Mock = mock.Mock{}
	d.generator.Mock = mock.Mock{}
}

func ownedTestTopic(userID uuid.UUID) *model.Topic {
	return &model.Topic{
		TopicID:      uuid.New(),
		Title:        "Goroutines",
		Content:      "A goroutine is a lightweight thread managed by the Go runtime.",
		AssignedDate: StartOfDay(time.Now()),
		Course:       &model.Course{CourseID: uuid.New(), UserID: userID},
	}
}

func Test_learningService_Chat(t *testing.T) {
	ctx := context.Background()
	d := newLearningTestDeps()
	userID := uuid.New()
	topic := ownedTestTopic(userID)
	req := &model.ChatRequest{Messages: []model.ChatMessage{
		{Role: "user", Content: "What is a goroutine?"},
	}}
	reply := &model.ChatMessage{Role: "assistant", Content: "A lightweight thread."}

	t.Run("正常系: 応答を返し会話全文をログに残す", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("Chat", ctx, topic.Content, req.Messages).Return(reply, nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(s *model.LearningSession) bool {
			if s.Mode != model.ModeChat || s.UserID != userID || s.TopicID != topic.TopicID {
				return false
			}
			var transcript []model.ChatMessage
			if err := json.Unmarshal(s.Data, &transcript); err != nil {
				return false
			}
			// 質問 + 応答の2件
			return len(transcript) == 2 && transcript[1].Role == "assistant"
		})).Return(nil).Once()

		got, err := d.service.Chat(ctx, userID, topic.TopicID, req)

		require.NoError(t, err)
		assert.Equal(t, reply, got)
		d.sessionRepo.AssertExpectations(t)
		d.generator.AssertExpectations(t)
	})

	t.Run("正常系: 学習ログの書き込み失敗は応答に影響しない", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("Chat", ctx, topic.Content, req.Messages).Return(reply, nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningSession")).
			Return(errors.New("db error")).Once()

		got, err := d.service.Chat(ctx, userID, topic.TopicID, req)

		require.NoError(t, err)
		assert.Equal(t, reply, got)
	})

	t.Run("異常系: 生成失敗", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("Chat", ctx, topic.Content, req.Messages).Return(nil, errors.New("openai: timeout")).Once()

		got, err := d.service.Chat(ctx, userID, topic.TopicID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrGeneration)
		assert.Nil(t, got)
		d.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 他人のトピックには403", func(t *testing.T) {
		d.reset()
		foreign := ownedTestTopic(uuid.New())
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), foreign.TopicID).Return(foreign, nil).Once()

		got, err := d.service.Chat(ctx, userID, foreign.TopicID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, got)
		d.generator.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_learningService_GetGame(t *testing.T) {
	ctx := context.Background()
	d := newLearningTestDeps()
	userID := uuid.New()
	topic := ownedTestTopic(userID)
	gameHTML := "<!DOCTYPE html><html><body>quiz</body></html>"
	gameURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(gameHTML))

	t.Run("正常系: キャッシュヒット時は生成もログ記録も行わない", func(t *testing.T) {
		d.reset()
		cached := &model.MediaConversion{TopicID: topic.TopicID, Mode: model.ModeGame, Content: gameHTML, URL: gameURL, Status: model.ConversionCompleted}
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.convRepo.On("FindCompleted", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID, model.ModeGame).Return(cached, nil).Once()

		got, err := d.service.GetGame(ctx, userID, topic.TopicID)

		require.NoError(t, err)
		assert.Equal(t, gameHTML, got.GameHTML)
		assert.Equal(t, gameURL, got.GameURL)
		d.generator.AssertNotCalled(t, "GenerateGame", mock.Anything, mock.Anything, mock.Anything)
		d.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: キャッシュミス時は生成して保存する", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.convRepo.On("FindCompleted", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID, model.ModeGame).Return(nil, model.ErrNotFound).Once()
		d.generator.On("GenerateGame", ctx, topic.Title, topic.Content).Return(gameHTML, nil).Once()
		d.convRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(c *model.MediaConversion) bool {
			return c.TopicID == topic.TopicID &&
				c.Mode == model.ModeGame &&
				c.Content == gameHTML &&
				c.URL == gameURL &&
				c.Status == model.ConversionCompleted
		})).Return(nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningSession")).Return(nil).Once()

		got, err := d.service.GetGame(ctx, userID, topic.TopicID)

		require.NoError(t, err)
		assert.Equal(t, gameHTML, got.GameHTML)
		assert.Equal(t, gameURL, got.GameURL)
		d.convRepo.AssertExpectations(t)
		d.generator.AssertExpectations(t)
	})

	t.Run("正常系: 保存で一意制約に負けたら勝者の行を返す", func(t *testing.T) {
		d.reset()
		winnerHTML := "<!DOCTYPE html><html><body>winner</body></html>"
		winner := &model.MediaConversion{TopicID: topic.TopicID, Mode: model.ModeGame, Content: winnerHTML, URL: "data:text/html;base64,xyz", Status: model.ConversionCompleted}
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.convRepo.On("FindCompleted", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID, model.ModeGame).Return(nil, model.ErrNotFound).Once()
		d.generator.On("GenerateGame", ctx, topic.Title, topic.Content).Return(gameHTML, nil).Once()
		d.convRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MediaConversion")).Return(model.ErrConflict).Once()
		d.convRepo.On("FindCompleted", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID, model.ModeGame).Return(winner, nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningSession")).Return(nil).Once()

		got, err := d.service.GetGame(ctx, userID, topic.TopicID)

		require.NoError(t, err)
		assert.Equal(t, winnerHTML, got.GameHTML)
		assert.Equal(t, winner.URL, got.GameURL)
		d.convRepo.AssertExpectations(t)
	})

	t.Run("異常系: 生成出力が壊れていたらMalformedOutputErrorを伝播する", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.convRepo.On("FindCompleted", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID, model.ModeGame).Return(nil, model.ErrNotFound).Once()
		d.generator.On("GenerateGame", ctx, topic.Title, topic.Content).
			Return("", &model.MalformedOutputError{Raw: "garbage", Reason: "no html"}).Once()

		got, err := d.service.GetGame(ctx, userID, topic.TopicID)

		require.Error(t, err)
		var malformed *model.MalformedOutputError
		assert.ErrorAs(t, err, &malformed)
		assert.Nil(t, got)
		d.convRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_learningService_Stubs(t *testing.T) {
	ctx := context.Background()
	d := newLearningTestDeps()
	userID := uuid.New()
	topic := ownedTestTopic(userID)

	t.Run("正常系: 音声はキャッシュせず都度変換してログを残す", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("ConvertToAudio", ctx, topic.Content).Return("Audio generation not yet implemented. Integrate with services like ElevenLabs, Amazon Polly, or Google TTS.", nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(s *model.LearningSession) bool {
			return s.Mode == model.ModeAudio
		})).Return(nil).Once()

		got, err := d.service.GetAudio(ctx, userID, topic.TopicID)

		require.NoError(t, err)
		assert.Contains(t, got.AudioURL, "not yet implemented")
		d.convRepo.AssertNotCalled(t, "FindCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: コミックはcomic_urlを常に空で返す", func(t *testing.T) {
		d.reset()
		panels := []string{"panel one", "panel two"}
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("ConvertToComic", ctx, topic.Title, topic.Content).Return(panels, nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningSession")).Return(nil).Once()

		got, err := d.service.GetComic(ctx, userID, topic.TopicID)

		require.NoError(t, err)
		assert.Empty(t, got.ComicURL)
		assert.Equal(t, panels, got.Panels)
	})

	t.Run("異常系: 変換失敗は生成エラー", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("ConvertToVideo", ctx, topic.Title, topic.Content).Return("", errors.New("boom")).Once()

		got, err := d.service.GetVideo(ctx, userID, topic.TopicID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrGeneration)
		assert.Nil(t, got)
	})
}

func Test_learningService_BuildCustom(t *testing.T) {
	ctx := context.Background()
	d := newLearningTestDeps()
	userID := uuid.New()
	topic := ownedTestTopic(userID)
	req := &model.CustomRequest{Description: "flashcards with spaced repetition"}
	html := "<!DOCTYPE html><html><body>flashcards</body></html>"

	t.Run("正常系: 説明文と生成結果の両方をログに残す", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("BuildCustomFeature", ctx, topic.Content, req.Description).Return(html, nil).Once()
		d.sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(s *model.LearningSession) bool {
			if s.Mode != model.ModeCustom {
				return false
			}
			var payload map[string]string
			if err := json.Unmarshal(s.Data, &payload); err != nil {
				return false
			}
			return payload["description"] == req.Description && payload["content"] == html
		})).Return(nil).Once()

		got, err := d.service.BuildCustom(ctx, userID, topic.TopicID, req)

		require.NoError(t, err)
		assert.Equal(t, html, got.Content)
		d.sessionRepo.AssertExpectations(t)
	})

	t.Run("異常系: 生成失敗", func(t *testing.T) {
		d.reset()
		d.topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topic.TopicID).Return(topic, nil).Once()
		d.generator.On("BuildCustomFeature", ctx, topic.Content, req.Description).Return("", errors.New("boom")).Once()

		got, err := d.service.BuildCustom(ctx, userID, topic.TopicID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrGeneration)
		assert.Nil(t, got)
	})
}
