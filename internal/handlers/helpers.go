package handlers

import (
	"log/slog"
	"net/http"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/webutil"
)

// decodeAndValidate はボディをデコードして検証します。
// 必須項目の欠落は requiredMsg (元の API と同じ文言) で返し、それ以外は翻訳済みのメッセージを返します。
// 失敗時はレスポンスを書き込み false を返します。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}, requiredMsg string) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}

	if err := webutil.Validate(dst, requiredMsg); err != nil {
		logger.Warn("Validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}

// identityOrReject は本人情報を返します。無い場合は 401 を書き込み nil を返します。
// ルーターでは RequireIdentity を付けていますが、ハンドラ単体でも安全にしておきます。
func identityOrReject(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *model.Identity {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		logger.Warn("Unauthorized access attempt")
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Not authenticated", "", model.ErrUnauthorized))
		return nil
	}
	return identity
}

// NotFound と MethodNotAllowed はルーター既定の text/plain 応答を JSON に置き換えます。
func NotFound(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	webutil.WriteResult(w, webutil.Result{Status: http.StatusNotFound, Body: model.APIError{Detail: "Not found"}}, logger)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	webutil.WriteResult(w, webutil.Result{Status: http.StatusMethodNotAllowed, Body: model.APIError{Detail: "Method not allowed"}}, logger)
}
