// internal/handlers/course_handler.go
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

type CourseHandler struct {
	service service.CourseService
}

func NewCourseHandler(s service.CourseService) *CourseHandler {
	return &CourseHandler{service: s}
}

// CreateCourse はコースを作成し、全トピックを生成・スケジュールします
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateCourseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for course creation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for course creation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	course, err := h.service.CreateCourse(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, course, logger)
}

// ListCourses は自分のコースを新しい順に返します
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courses, err := h.service.ListCourses(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if courses == nil {
		courses = []*model.Course{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

// GetActiveCourse は有効なコースを返します。無い場合は 200 で null を返す。
func (h *CourseHandler) GetActiveCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.GetActiveCourse(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

// GetCourse はIDで1件取得します。他人のコースは404。
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
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

	course, err := h.service.GetCourse(r.Context(), userID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}
