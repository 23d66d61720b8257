// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"winestudy/internal/model"

	"github.com/go-playground/validator/v10"
)

// Result はハンドラの結果を表します。Status が 0 の場合は 200、Body が nil の場合は空のボディになります。
type Result struct {
	Status  int
	Body    interface{}
	Headers map[string]string
}

// WriteResult は Result をレスポンスに書き出します。
func WriteResult(w http.ResponseWriter, res Result, logger *slog.Logger) {
	for k, v := range res.Headers {
		w.Header().Set(k, v)
	}
	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	if res.Body == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		return
	}
	RespondWithJSON(w, status, res.Body, logger)
}

// HandleError はエラーを解釈し、{"detail": "..."} 形式のエラーレスポンスを返します。
// AppError 以外のエラーは内容を隠し、500 の汎用メッセージにします。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	if errors.As(err, &appErr) && statusCode != http.StatusInternalServerError {
		RespondWithJSON(w, statusCode, model.APIError{Detail: appErr.Detail.Message}, logger)
		return
	}

	// ログには詳細を出し、クライアントには汎用メッセージのみ返す
	logger.Error("Unhandled error", "error", err)
	RespondWithJSON(w, http.StatusInternalServerError, model.APIError{Detail: model.MsgInternalServerError}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		// 重複は 409 ではなく 400 で返す
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Warn("Failed to write response", "error", err)
	}
}

// NewValidationErrorResponse はバリデーションエラーを 400 の AppError にまとめます。
// メッセージは登録済みの英語翻訳を使います。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		if Trans != nil {
			messages = append(messages, err.Translate(Trans))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed on the '%s' tag", err.Field(), err.Tag()))
		}
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}

// Validate は構造体を検証し、失敗した場合は 400 の AppError を返します。
// requiredMsg が空でなければ、必須項目の欠落はその文言で返します。
func Validate(dst interface{}, requiredMsg string) error {
	err := Validator.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("webutil.Validate: %w", err)
	}
	if requiredMsg != "" {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return model.NewAppError("VALIDATION_ERROR", requiredMsg, fe.Field(), model.ErrInvalidInput)
			}
		}
	}
	return NewValidationErrorResponse(verrs)
}
