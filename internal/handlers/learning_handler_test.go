// internal/handlers/learning_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_micro_learn/internal/handlers"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/service/mocks"
)

func setupLearningRouter(t *testing.T) (*mocks.LearningService, *chi.Mux) {
	mockLearningService := mocks.NewLearningService(t)
	learningHandler := handlers.NewLearningHandler(mockLearningService)
	router := newProtectedRouter(func(r chi.Router) {
		r.Route("/api/learning", func(r chi.Router) {
			r.Post("/chat/{topicID}", learningHandler.Chat)
			r.Post("/game/{topicID}", learningHandler.GetGame)
			r.Post("/audio/{topicID}", learningHandler.GetAudio)
			r.Post("/podcast/{topicID}", learningHandler.GetPodcast)
			r.Post("/video/{topicID}", learningHandler.GetVideo)
			r.Post("/comic/{topicID}", learningHandler.GetComic)
			r.Post("/custom/{topicID}", learningHandler.BuildCustom)
		})
	})
	return mockLearningService, router
}

func TestLearningHandler_Chat(t *testing.T) {
	mockLearningService, router := setupLearningRouter(t)
	userID := uuid.New()
	topicID := uuid.New()

	validReqBody := model.ChatRequest{Messages: []model.ChatMessage{
		{Role: "user", Content: "What is a goroutine?"},
	}}
	reply := &model.ChatMessage{Role: "assistant", Content: "A lightweight thread."}

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: アシスタントの応答が返る",
			path: "/api/learning/chat/" + topicID.String(),
			body: validReqBody,
			setupMock: func() {
				mockLearningService.On("Chat", mock.AnythingOfType("*context.valueCtx"), userID, topicID, &validReqBody).
					Return(reply, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: メッセージが空ならバリデーションエラー",
			path:           "/api/learning/chat/" + topicID.String(),
			body:           model.ChatRequest{Messages: []model.ChatMessage{}},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: UUIDとして不正なIDは400",
			path:           "/api/learning/chat/not-a-uuid",
			body:           validReqBody,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_TOPIC_ID",
		},
		{
			name: "異常系: 未来日のトピックは403",
			path: "/api/learning/chat/" + topicID.String(),
			body: validReqBody,
			setupMock: func() {
				mockLearningService.On("Chat", mock.AnythingOfType("*context.valueCtx"), userID, topicID, &validReqBody).
					Return(nil, model.NewAppError("TOPIC_LOCKED", "このトピックはまだ公開されていません。", "", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "TOPIC_LOCKED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", tc.path, tc.body, &userID)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.ChatMessage
				decodeBody(t, rr, &resp)
				assert.Equal(t, "assistant", resp.Role)
			} else {
				assertErrorResponse(t, rr, tc.expectedCode)
			}
		})
	}
}

func TestLearningHandler_GetGame(t *testing.T) {
	mockLearningService, router := setupLearningRouter(t)
	userID := uuid.New()
	topicID := uuid.New()

	t.Run("正常系: HTMLとdata URLが返る", func(t *testing.T) {
		game := &model.GameResponse{GameHTML: "<html></html>", GameURL: "data:text/html;base64,PGh0bWw+PC9odG1sPg=="}
		mockLearningService.On("GetGame", mock.AnythingOfType("*context.valueCtx"), userID, topicID).
			Return(game, nil).Once()

		req := createRequest(t, "POST", "/api/learning/game/"+topicID.String(), nil, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.GameResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, game.GameHTML, resp.GameHTML)
		assert.Equal(t, game.GameURL, resp.GameURL)
	})

	t.Run("異常系: 生成失敗は500", func(t *testing.T) {
		mockLearningService.On("GetGame", mock.AnythingOfType("*context.valueCtx"), userID, topicID).
			Return(nil, model.NewAppError("GENERATION_FAILED", "ゲームの生成に失敗しました。", "", model.ErrGeneration)).Once()

		req := createRequest(t, "POST", "/api/learning/game/"+topicID.String(), nil, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestLearningHandler_MediaStubs(t *testing.T) {
	mockLearningService, router := setupLearningRouter(t)
	userID := uuid.New()
	topicID := uuid.New()

	t.Run("正常系: 音声はプレースホルダーURLでも200", func(t *testing.T) {
		mockLearningService.On("GetAudio", mock.AnythingOfType("*context.valueCtx"), userID, topicID).
			Return(&model.AudioResponse{AudioURL: "Audio generation not yet implemented. Integrate with services like ElevenLabs, Amazon Polly, or Google TTS."}, nil).Once()

		req := createRequest(t, "POST", "/api/learning/audio/"+topicID.String(), nil, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.AudioResponse
		decodeBody(t, rr, &resp)
		assert.Contains(t, resp.AudioURL, "not yet implemented")
	})

	t.Run("正常系: コミックはパネル一覧とcomic_urlを返す", func(t *testing.T) {
		comic := &model.ComicResponse{ComicURL: "", Panels: []string{"p1", "p2", "p3"}}
		mockLearningService.On("GetComic", mock.AnythingOfType("*context.valueCtx"), userID, topicID).
			Return(comic, nil).Once()

		req := createRequest(t, "POST", "/api/learning/comic/"+topicID.String(), nil, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.ComicResponse
		decodeBody(t, rr, &resp)
		assert.Empty(t, resp.ComicURL)
		require.Len(t, resp.Panels, 3)
	})
}

func TestLearningHandler_BuildCustom(t *testing.T) {
	mockLearningService, router := setupLearningRouter(t)
	userID := uuid.New()
	topicID := uuid.New()

	validReqBody := model.CustomRequest{Description: "flashcards with spaced repetition"}

	t.Run("正常系: 生成されたHTMLが返る", func(t *testing.T) {
		custom := &model.CustomResponse{Content: "<html>flashcards</html>"}
		mockLearningService.On("BuildCustom", mock.AnythingOfType("*context.valueCtx"), userID, topicID, &validReqBody).
			Return(custom, nil).Once()

		req := createRequest(t, "POST", "/api/learning/custom/"+topicID.String(), validReqBody, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.CustomResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, custom.Content, resp.Content)
	})

	t.Run("異常系: 説明文なしはバリデーションエラー", func(t *testing.T) {
		req := createRequest(t, "POST", "/api/learning/custom/"+topicID.String(), model.CustomRequest{}, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorResponse(t, rr, "VALIDATION_ERROR")
	})
}
