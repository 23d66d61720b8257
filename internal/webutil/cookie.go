package webutil

import (
	"net/http"
	"time"

	"winestudy/internal/config"
)

// SetAuthCookie はトークンを auth_token クッキーとして書き込みます。
// ボディの token フィールドとは別に、ブラウザの同一オリジン呼び出し用です。
func SetAuthCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearAuthCookie は auth_token クッキーを削除します。
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// AuthToken は Bearer ヘッダーを優先し、無ければ auth_token クッキーからトークンを取り出します。
func AuthToken(r *http.Request) string {
	if token := BearerToken(r); token != "" {
		return token
	}
	if c, err := r.Cookie(config.AuthCookieName); err == nil {
		return c.Value
	}
	return ""
}
