// internal/handlers/note_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_micro_learn/internal/handlers"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/service/mocks"
)

func setupNoteRouter(t *testing.T) (*mocks.NoteService, *chi.Mux) {
	mockNoteService := mocks.NewNoteService(t)
	noteHandler := handlers.NewNoteHandler(mockNoteService)
	router := newProtectedRouter(func(r chi.Router) {
		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/topic/{topicID}", noteHandler.GetNoteByTopic)
			r.Post("/", noteHandler.CreateNote)
			r.Patch("/{noteID}", noteHandler.UpdateNote)
		})
	})
	return mockNoteService, router
}

func TestNoteHandler_GetNoteByTopic(t *testing.T) {
	mockNoteService, router := setupNoteRouter(t)
	userID := uuid.New()
	topicID := uuid.New()

	t.Run("正常系: メモを取得", func(t *testing.T) {
		note := &model.Note{NoteID: uuid.New(), TopicID: topicID, UserID: userID, Content: "memo"}
		mockNoteService.On("GetNoteByTopic", mock.AnythingOfType("*context.valueCtx"), userID, topicID).
			Return(note, nil).Once()

		req := createRequest(t, "GET", "/api/notes/topic/"+topicID.String(), nil, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.Note
		decodeBody(t, rr, &resp)
		assert.Equal(t, note.NoteID, resp.NoteID)
	})

	t.Run("正常系: メモが無い場合は200でnull", func(t *testing.T) {
		mockNoteService.On("GetNoteByTopic", mock.AnythingOfType("*context.valueCtx"), userID, topicID).
			Return(nil, nil).Once()

		req := createRequest(t, "GET", "/api/notes/topic/"+topicID.String(), nil, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "null", rr.Body.String())
	})
}

func TestNoteHandler_CreateNote(t *testing.T) {
	mockNoteService, router := setupNoteRouter(t)
	userID := uuid.New()
	topicID := uuid.New()

	validReqBody := model.PostNoteRequest{TopicID: topicID, Content: "goroutineはOSスレッドより軽い"}
	createdNote := &model.Note{NoteID: uuid.New(), TopicID: topicID, UserID: userID, Content: validReqBody.Content}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 201と作成されたメモが返る",
			body: validReqBody,
			setupMock: func() {
				mockNoteService.On("CreateNote", mock.AnythingOfType("*context.valueCtx"), userID, &validReqBody).
					Return(createdNote, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 本文なしはバリデーションエラー",
			body:           model.PostNoteRequest{TopicID: topicID},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 既にメモがあるトピックには409",
			body: validReqBody,
			setupMock: func() {
				mockNoteService.On("CreateNote", mock.AnythingOfType("*context.valueCtx"), userID, &validReqBody).
					Return(nil, model.NewAppError("NOTE_ALREADY_EXISTS", "このトピックには既にメモがあります。更新にはPATCHを使用してください。", "topic_id", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "NOTE_ALREADY_EXISTS",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/notes", tc.body, &userID)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assertErrorResponse(t, rr, tc.expectedCode)
			}
		})
	}
}

func TestNoteHandler_UpdateNote(t *testing.T) {
	mockNoteService, router := setupNoteRouter(t)
	userID := uuid.New()
	noteID := uuid.New()

	validReqBody := model.PatchNoteRequest{Content: "updated"}

	t.Run("正常系: 更新成功", func(t *testing.T) {
		updated := &model.Note{NoteID: noteID, UserID: userID, Content: validReqBody.Content}
		mockNoteService.On("UpdateNote", mock.AnythingOfType("*context.valueCtx"), userID, noteID, &validReqBody).
			Return(updated, nil).Once()

		req := createRequest(t, "PATCH", "/api/notes/"+noteID.String(), validReqBody, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.Note
		decodeBody(t, rr, &resp)
		assert.Equal(t, "updated", resp.Content)
	})

	t.Run("異常系: UUIDとして不正なIDは400", func(t *testing.T) {
		req := createRequest(t, "PATCH", "/api/notes/not-a-uuid", validReqBody, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorResponse(t, rr, "INVALID_NOTE_ID")
	})

	t.Run("異常系: 他人のメモは403", func(t *testing.T) {
		mockNoteService.On("UpdateNote", mock.AnythingOfType("*context.valueCtx"), userID, noteID, &validReqBody).
			Return(nil, model.NewAppError("FORBIDDEN", "このメモにはアクセスできません。", "", model.ErrForbidden)).Once()

		req := createRequest(t, "PATCH", "/api/notes/"+noteID.String(), validReqBody, &userID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
