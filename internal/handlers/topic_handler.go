// internal/handlers/topic_handler.go
package handlers

import (
	"net/http"
	"time"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/service"
	"go_micro_learn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TopicHandler struct {
	service service.TopicService
}

func NewTopicHandler(s service.TopicService) *TopicHandler {
	return &TopicHandler{service: s}
}

// GetTopicsByDate は有効なコースの指定日のトピックを返します
func (h *TopicHandler) GetTopicsByDate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	dateStr := chi.URLParam(r, "date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		logger.Warn("Invalid date format", "date", dateStr)
		appErr := model.NewAppError("INVALID_DATE", "日付はYYYY-MM-DD形式で指定してください。", "date", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	topics, err := h.service.GetTopicsByDate(r.Context(), userID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetCourseTopics はコース全体のトピック一覧を返します (未来分は本文なし)
func (h *TopicHandler) GetCourseTopics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_COURSE_ID", "コースIDの形式が正しくありません。", "course_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	topics, err := h.service.GetCourseTopics(r.Context(), userID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetTopic は1件取得します。未来日・他人のトピックは403。
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
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

	topic, err := h.service.GetTopic(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}

// CompleteTopic は完了フラグを立てます (冪等)
func (h *TopicHandler) CompleteTopic(w http.ResponseWriter, r *http.Request) {
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

	topic, err := h.service.CompleteTopic(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}
