package middleware

import (
	"net/http"
	"runtime/debug"

	"winestudy/internal/model"
	"winestudy/internal/webutil"
)

// Recoverer はハンドラ内の panic を 500 {"detail":"Internal server error"} に変換します。
// スタックトレースはログにのみ出し、接続は閉じます。
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			logger := GetLogger(r.Context())
			logger.Error("Panic recovered", "panic", rvr, "stack", string(debug.Stack()))
			webutil.WriteResult(w, webutil.Result{
				Status:  http.StatusInternalServerError,
				Body:    model.APIError{Detail: model.MsgInternalServerError},
				Headers: map[string]string{"Connection": "close"},
			}, logger)
		}()
		next.ServeHTTP(w, r)
	})
}
