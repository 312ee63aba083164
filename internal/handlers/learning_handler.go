// internal/handlers/learning_handler.go
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

type LearningHandler struct {
	service service.LearningService
}

func NewLearningHandler(s service.LearningService) *LearningHandler {
	return &LearningHandler{service: s}
}

// topicIDFromRequest はURLからトピックIDを取り出し、認証済みユーザーIDと合わせて返します
func topicIDFromRequest(r *http.Request) (userID, topicID uuid.UUID, err error) {
	userID, err = middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	topicID, err = uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, model.NewAppError("INVALID_TOPIC_ID", "トピックIDの形式が正しくありません。", "topic_id", model.ErrInvalidInput)
	}
	return userID, topicID, nil
}

// Chat はチューターとの1往復を処理します。履歴はクライアントが全文送信する。
func (h *LearningHandler) Chat(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ChatRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode chat request body", "error", err)
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

	reply, err := h.service.Chat(r.Context(), userID, topicID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, reply, logger)
}

// GetGame はミニゲームHTMLを返します (トピック×モード単位でキャッシュ)
func (h *LearningHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	game, err := h.service.GetGame(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, game, logger)
}

func (h *LearningHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	audio, err := h.service.GetAudio(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, audio, logger)
}

func (h *LearningHandler) GetPodcast(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	podcast, err := h.service.GetPodcast(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, podcast, logger)
}

func (h *LearningHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	video, err := h.service.GetVideo(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, video, logger)
}

func (h *LearningHandler) GetComic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	comic, err := h.service.GetComic(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, comic, logger)
}

// BuildCustom はユーザー記述のカスタム教材を生成します
func (h *LearningHandler) BuildCustom(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, topicID, err := topicIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CustomRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode custom feature request body", "error", err)
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

	custom, err := h.service.BuildCustom(r.Context(), userID, topicID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, custom, logger)
}
