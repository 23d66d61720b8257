package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
})

func TestCORS(t *testing.T) {
	handler := middleware.CORS([]string{"*"}, 300)(okHandler)

	testCases := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantBody string
	}{
		{name: "プリフライト", method: http.MethodOptions, path: "/api/tastings", headers: map[string]string{
			"Origin": "https://app.example.com", "Access-Control-Request-Method": "POST",
		}},
		{name: "存在しないパスへの OPTIONS", method: http.MethodOptions, path: "/anything/at/all"},
		{name: "通常のリクエストにもヘッダーを付ける", method: http.MethodGet, path: "/api/countries", wantBody: "ok"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.wantBody, rr.Body.String())
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			if tc.method == http.MethodOptions {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
			assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rr := httptest.NewRecorder()
	middleware.Recoverer(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "boom")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}

func TestIdentityAndRequireIdentity(t *testing.T) {
	testCases := []struct {
		name       string
		setup      func(req *http.Request, tokens *mocks.TokenService)
		wantStatus int
		wantUser   string
	}{
		{
			name: "Bearer トークン",
			setup: func(req *http.Request, tokens *mocks.TokenService) {
				req.Header.Set("Authorization", "Bearer good")
				tokens.On("Verify", "good").Return(&model.Identity{UserID: "user_1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantUser:   "user_1",
		},
		{
			name: "クッキーのトークン",
			setup: func(req *http.Request, tokens *mocks.TokenService) {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: "cookie-token"})
				tokens.On("Verify", "cookie-token").Return(&model.Identity{UserID: "user_2"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantUser:   "user_2",
		},
		{
			name: "無効なトークンは未認証と同じ",
			setup: func(req *http.Request, tokens *mocks.TokenService) {
				req.Header.Set("Authorization", "Bearer expired")
				tokens.On("Verify", "expired").Return(nil, errors.New("invalid token")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "トークン無し",
			setup:      func(req *http.Request, tokens *mocks.TokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := mocks.NewTokenService(t)
			var gotUser string
			protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = middleware.GetIdentity(r.Context()).UserID
				w.WriteHeader(http.StatusOK)
			})
			handler := middleware.Identity(tokens)(middleware.RequireIdentity(protected))

			req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
			tc.setup(req, tokens)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantUser, gotUser)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"detail":"Not authenticated"}`, rr.Body.String())
			}
		})
	}
}

func TestAdminToken(t *testing.T) {
	testCases := []struct {
		name       string
		configured string
		given      string
		wantStatus int
	}{
		{name: "一致", configured: "s3cret", given: "s3cret", wantStatus: http.StatusOK},
		{name: "不一致", configured: "s3cret", given: "guess", wantStatus: http.StatusUnauthorized},
		{name: "ヘッダー無し", configured: "s3cret", given: "", wantStatus: http.StatusUnauthorized},
		{name: "未設定なら常に拒否", configured: "", given: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
			if tc.given != "" {
				req.Header.Set("X-Admin-Token", tc.given)
			}
			rr := httptest.NewRecorder()
			middleware.AdminToken(tc.configured)(okHandler).ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/api/grapes/{grape_id}", okHandler)

	for _, id := range []string{"merlot", "syrah"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/grapes/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	expected := `
# HELP winestudy_http_requests_total Total number of HTTP requests handled.
# TYPE winestudy_http_requests_total counter
winestudy_http_requests_total{method="GET",route="/api/grapes/{grape_id}",status="200"} 2
winestudy_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "winestudy_http_requests_total"))
}
