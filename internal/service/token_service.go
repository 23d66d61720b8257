//go:generate mockery --name TokenService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"errors"
	"fmt"
	"time"

	"winestudy/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken はトークンが無効な場合のエラーです。期限切れ・改ざん・形式不正を区別しません。
var ErrInvalidToken = errors.New("invalid token")

// TokenService は本人確認用トークンの発行と検証を行います。状態は持ちません。
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*model.Identity, error)
}

// IdentityClaims はJWTに含めるカスタムクレーム
type IdentityClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &jwtTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewTokenServiceWithClock はテスト用に現在時刻を差し替えられるコンストラクタです。
func NewTokenServiceWithClock(secret string, ttl time.Duration, now func() time.Time) TokenService {
	return &jwtTokenService{secret: []byte(secret), ttl: ttl, now: now}
}

func (s *jwtTokenService) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := &IdentityClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtTokenService.Issue: %w", err)
	}
	return signed, nil
}

// Verify は署名 (HS256 のみ)・有効期限 (必須) を検証します。
// 失敗した場合は部分的な情報を返さず、常に ErrInvalidToken を返します。
func (s *jwtTokenService) Verify(tokenString string) (*model.Identity, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &model.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
