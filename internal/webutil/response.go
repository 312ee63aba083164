// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go_micro_learn/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	var malformed *model.MalformedOutputError

	switch {
	case errors.As(err, &appErr):
		// AppError の場合、その詳細情報をレスポンスとして使用
		errResp = model.APIErrorResponse{
			Message: appErr.Detail.Message,
			Errors:  []model.ErrorDetail{appErr.Detail},
		}
	case errors.As(err, &malformed):
		// 生成モデルの応答が壊れていた場合。生テキストはログにのみ残す。
		logger.Error("Malformed generation output", "error", malformed.Reason, "raw", malformed.Raw)
		errResp = model.APIErrorResponse{Message: "コンテンツの生成に失敗しました。もう一度お試しください。"}
	case errors.Is(err, model.ErrGeneration):
		errResp = model.APIErrorResponse{Message: "コンテンツの生成に失敗しました。もう一度お試しください。"}
	case errors.Is(err, model.ErrNotFound):
		errResp = model.APIErrorResponse{Message: "リソースが見つかりません。"}
	case errors.Is(err, model.ErrForbidden):
		errResp = model.APIErrorResponse{Message: "アクセスが拒否されました。"}
	case errors.Is(err, model.ErrUnauthorized):
		errResp = model.APIErrorResponse{Message: "認証に失敗しました。"}
	case errors.Is(err, model.ErrInvalidInput):
		errResp = model.APIErrorResponse{Message: "リクエストの内容が正しくありません。"}
	default:
		// 予期せぬエラー。ログには詳細を出力し、クライアントには汎用メッセージを返す。
		logger.Error("Unhandled error", "error", err)
		errResp = model.APIErrorResponse{Message: "サーバー内部でエラーが発生しました。"}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		// 生成エラーを含め、ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"レスポンス生成中にエラーが発生しました。"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse はバリデーションエラー群を1つのAppErrorにまとめます
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	if len(errs) == 0 {
		return model.NewAppError("VALIDATION_ERROR", "入力値が正しくありません。", "", model.ErrInvalidInput)
	}
	// 最初のエラーを代表としてクライアントに返す
	first := errs[0]
	msg := first.Translate(Trans)
	if msg == "" {
		msg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", first.Field(), first.Tag())
	}
	return model.NewAppError("VALIDATION_ERROR", msg, first.Field(), model.ErrInvalidInput)
}
