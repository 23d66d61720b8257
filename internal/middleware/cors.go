package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
)

// CORS は rs/cors でオリジンを判定したうえで、すべてのレスポンスに固定のヘッダーを付けます。
// OPTIONS はリソースに関係なく 200 と空のボディ (Content-Type は application/json) を返します。
func CORS(allowedOrigins []string, maxAge int) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials:   true,
		MaxAge:             maxAge,
		OptionsPassthrough: true, // プリフライトの応答は下の staticCORS で返す
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(staticCORS(next))
	}
}

func staticCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if h.Get("Access-Control-Allow-Origin") == "" {
			h.Set("Access-Control-Allow-Origin", "*")
		}
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			h.Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
