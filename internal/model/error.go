// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("not authenticated")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrUpstream       = errors.New("upstream dependency failed")
	ErrInternalServer = errors.New("internal server error")
)

// MsgInternalServerError はクライアントに返す汎用メッセージです。内部の詳細は含めません。
const MsgInternalServerError = "Internal server error"

// ErrorDetail はエラーの詳細です。Code と Field はログ用で、レスポンスには Message のみを出します。
type ErrorDetail struct {
	Code    string
	Message string
	Field   string
}

// AppError はサービス層から返す業務エラーです。
// Err には上記の sentinel を入れ、ステータスコードの判定に使います。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// APIError はAPIエラーレスポンスの構造体 ({"detail": "..."})
type APIError struct {
	Detail string `json:"detail"`
}

// MessageResponse は {"message": "..."} 形式の汎用レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}
