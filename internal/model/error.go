// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrUnauthorized   = errors.New("unauthorized")      // 認証失敗・無効トークン・無効化アカウント
	ErrForbidden      = errors.New("forbidden")         // 認証済みだが権限なし
	ErrUnavailable    = errors.New("service unavailable")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail はAPIエラーレスポンスに含めるエラー詳細
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・ユーザー向けメッセージ・根本原因をまとめたエラー型。
// Unwrap で根本原因のセンチネルエラーを返すため、errors.Is での判定が可能。
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Code + ": " + e.err.Error()
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
