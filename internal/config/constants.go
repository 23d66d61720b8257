// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "Wine Study API"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort   = ":8080"
	DefaultLogLevel     = "info"
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultTokenTTL     = 7 * 24 * time.Hour
	DefaultOAuthTimeout = 10 * time.Second
	DefaultQuizLimit    = 5
	DefaultQuizMaxLimit = 50
	DefaultSearchLimit  = 20
)

// OAuthCallsPerLogin は Google ログイン1回あたりの外部呼び出し数 (トークン交換とユーザー情報取得) です。
// 書き込みタイムアウトは OAuth タイムアウトの (OAuthCallsPerLogin+1) 倍を下回らないようにします。
const OAuthCallsPerLogin = 2

// 認証クッキー
const (
	AuthCookieName = "auth_token"
)

// 言語設定
const (
	DefaultLanguage = "pt"
)

var SupportedLanguages = []string{"pt", "en"}

// Google OAuth のエンドポイント
const (
	GoogleTokenURL    = "https://oauth2.googleapis.com/token"
	GoogleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)
