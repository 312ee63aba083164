// internal/handlers/main_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
)

// ハンドラテストはサービス層をモックに差し替えて行う。
// 認証には本番のJWTミドルウェアの代わりに、X-User-IDヘッダーを読む
// 開発用ミドルウェアを使う。

// newProtectedRouter は認証済みルートのテスト用ルーターを作成します
func newProtectedRouter(register func(r chi.Router)) *chi.Mux {
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		register(r)
	})
	return router
}

// createRequest はテスト用のHTTPリクエストオブジェクトを作成します。
// userIDが指定されていれば X-User-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBodyBytes []byte
	var err error
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			reqBodyBytes, err = json.Marshal(body)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBodyBytes))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// executeRequest はリクエストを指定ルーターで実行し、レコーダーを返します
func executeRequest(router *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody はレスポンスボディを指定の型にデコードします
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dest), "Failed to decode response body: %s", rr.Body.String())
}

// assertErrorResponse はエラーレスポンスの形式とエラーコードを検証します
func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	decodeBody(t, rr, &errResp)
	assert.NotEmpty(t, errResp.Message)
	if expectedCode != "" {
		require.NotEmpty(t, errResp.Errors, "expected error detail with code %s, body: %s", expectedCode, rr.Body.String())
		assert.Equal(t, expectedCode, errResp.Errors[0].Code)
	}
}
