package service_test

import (
	"testing"
	"time"

	"winestudy/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)

	token, err := tokens.Issue("user_abc", "ana@example.com")
	require.NoError(t, err)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user_abc", identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)
}

// トークンはサーバー側で失効させないため、ログアウト後でも期限内なら有効のまま
func TestTokenService_ValidUntilExpiry(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour
	issuer := service.NewTokenServiceWithClock(testSecret, ttl, fixedClock(issuedAt))

	token, err := issuer.Issue("user_abc", "ana@example.com")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{name: "発行直後", now: issuedAt},
		{name: "期限の1分前", now: issuedAt.Add(ttl - time.Minute)},
		{name: "期限切れ", now: issuedAt.Add(ttl + time.Minute), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := service.NewTokenServiceWithClock(testSecret, ttl, fixedClock(tc.now))
			identity, err := verifier.Verify(token)
			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidToken)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user_abc", identity.UserID)
		})
	}
}

func TestTokenService_RejectsInvalidTokens(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	sign := func(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	testCases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "空文字", token: func(t *testing.T) string { return "" }},
		{name: "形式不正", token: func(t *testing.T) string { return "not-a-jwt" }},
		{
			name: "別の秘密鍵で署名",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other-secret"), &service.IdentityClaims{
					UserID: "user_abc", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
		},
		{
			name: "HS256 以外のアルゴリズム",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(testSecret), &service.IdentityClaims{
					UserID: "user_abc", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
		},
		{
			name: "alg=none",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, &service.IdentityClaims{
					UserID: "user_abc", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
		},
		{
			name: "exp が無い",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), &service.IdentityClaims{UserID: "user_abc"})
			},
		},
		{
			name: "user_id が無い",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), &service.IdentityClaims{
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
				})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := tokens.Verify(tc.token(t))
			assert.ErrorIs(t, err, service.ErrInvalidToken)
			assert.Nil(t, identity)
		})
	}
}
