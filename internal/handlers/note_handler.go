// internal/handlers/note_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/service"
	"go_micro_learn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type NoteHandler struct {
	service service.NoteService
}

func NewNoteHandler(s service.NoteService) *NoteHandler {
	return &NoteHandler{service: s}
}

// GetNoteByTopic はトピックのメモを返します。無い場合は 200 で null を返す。
func (h *NoteHandler) GetNoteByTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topicID, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_TOPIC_ID", "トピックIDの形式が正しくありません。", "topic_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	note, err := h.service.GetNoteByTopic(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}

// CreateNote はメモを作成します。トピックごとに1件のみ (2件目は409)。
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostNoteRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for note creation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for note creation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	note, err := h.service.CreateNote(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, note, logger)
}

// UpdateNote はメモの本文を更新します
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_NOTE_ID", "メモIDの形式が正しくありません。", "note_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PatchNoteRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	note, err := h.service.UpdateNote(r.Context(), userID, noteID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}
