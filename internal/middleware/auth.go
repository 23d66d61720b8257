package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"winestudy/internal/model"
	"winestudy/internal/webutil"
)

// TokenVerifier はトークンを検証して本人情報を返します。service.TokenService が満たします。
type TokenVerifier interface {
	Verify(token string) (*model.Identity, error)
}

// Identity は Bearer ヘッダー (優先) または auth_token クッキーからトークンを取り出し、
// 検証できた場合のみ本人情報をコンテキストに入れます。失敗してもリクエストは拒否しません。
func Identity(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := webutil.AuthToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := verifier.Verify(token)
			if err != nil {
				// 期限切れ・改ざんは「未認証」と同じ扱い
				GetLogger(r.Context()).Debug("Token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			logger := GetLogger(ctx).With("user_id", identity.UserID)
			next.ServeHTTP(w, r.WithContext(WithLogger(ctx, logger)))
		})
	}
}

// RequireIdentity は本人情報が無いリクエストを 401 (Not authenticated) で拒否します。
// Identity の後に置きます。
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetIdentity(r.Context()) == nil {
			logger := GetLogger(r.Context())
			logger.Warn("Auth failed: no valid identity")
			appErr := model.NewAppError("UNAUTHORIZED", "Not authenticated", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity は本人情報をコンテキストに格納します。
func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, model.IdentityKey, identity)
}

// GetIdentity はコンテキストから本人情報を取り出します。未認証なら nil です。
func GetIdentity(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(model.IdentityKey).(*model.Identity)
	return identity
}

// AdminToken は X-Admin-Token ヘッダーを定数時間比較で検証します。
// token が空の場合は常に拒否します。
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get("X-Admin-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
				logger := GetLogger(r.Context())
				logger.Warn("Admin token rejected")
				appErr := model.NewAppError("UNAUTHORIZED", "Not authenticated", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
