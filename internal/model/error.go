// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrGeneration     = errors.New("content generation failed")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail はエラーレスポンスに含める個別エラーの詳細
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
// ボディは {message, errors?} の形式で返す
type APIErrorResponse struct {
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// AppError はエラーコードとクライアント向けメッセージを持つアプリケーションエラー
type AppError struct {
	Detail ErrorDetail
	Err    error // ステータスコード判定用のセンチネルエラーをラップする
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

// MalformedOutputError は生成モデルの応答が期待した形式にパースできなかった場合のエラー。
// 診断用に応答の生テキストを保持する。
type MalformedOutputError struct {
	Raw    string // パース対象となった生の応答テキスト
	Reason string // パース失敗の原因
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generation output: %s", e.Reason)
}

func (e *MalformedOutputError) Unwrap() error {
	return ErrGeneration
}
