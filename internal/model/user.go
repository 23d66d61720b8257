package model

import (
	"time"
)

// User はアカウント情報です。パスワードハッシュは OAuth のみのユーザーでは nil になります。
type User struct {
	UserID            string    `gorm:"primaryKey;size:64" json:"user_id"`
	Email             string    `gorm:"size:255;not null;uniqueIndex" json:"email"` // 常に小文字で保存
	PasswordHash      *string   `gorm:"default:null" json:"-"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	Picture           *string   `gorm:"default:null" json:"picture"`
	GoogleID          *string   `gorm:"size:255;uniqueIndex;default:null" json:"-"`
	PreferredLanguage string    `gorm:"size:8;not null;default:pt" json:"preferred_language"`
	CreatedAt         time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Identity はトークンから復元された呼び出し元の情報です。
type Identity struct {
	UserID string
	Email  string
}

type ContextKey string

const IdentityKey ContextKey = "identity"

// RegisterRequest はユーザー登録APIのリクエストボディ
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required,max=255"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionRequest は OAuth の認可コードを受け取ります
type SessionRequest struct {
	Code string `json:"code" validate:"required"`
}

type LanguageRequest struct {
	Language string `json:"language"`
}

// AuthResponse は認証成功時のレスポンスです。ユーザー情報にトークンを添えて返します。
type AuthResponse struct {
	*User
	Token     string `json:"token"`
	IsNewUser *bool  `json:"is_new_user,omitempty"`
}

type LanguageResponse struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// OAuthProfile は外部プロバイダから取得したプロフィールです。
type OAuthProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
