// internal/handlers/main_test.go
package handlers_test // テストパッケージ名は _test サフィックス

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"winestudy/internal/handlers"
	"winestudy/internal/repository"
	"winestudy/internal/service"
)

const (
	testJWTSecret  = "handlers-test-secret"
	testAdminToken = "admin-test-token"
	testTokenTTL   = 7 * 24 * time.Hour
)

var (
	testDB     *gorm.DB     // テスト用DBコネクション (パッケージ全体で共有)
	testRouter http.Handler // 本物のサービスをつないだルーター
	testTokens service.TokenService
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// TestMain は SQLite のインメモリ DB に参照データを投入し、本番と同じ構成のルーターを組み立てます。
func TestMain(m *testing.M) {
	log.Println("Setting up handlers test environment...")

	var err error
	testDB, err = repository.NewDB("file:handlers_test?mode=memory&cache=shared", testLogger)
	if err != nil {
		log.Fatalf("Failed to open test database: %v", err)
	}
	if err := repository.AutoMigrate(testDB); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := insertHandlerFixtures(testDB); err != nil {
		log.Fatalf("Failed to insert fixtures: %v", err)
	}

	testTokens = service.NewTokenService(testJWTSecret, testTokenTTL)
	testRouter = newTestRouter(testDB, testTokens, nil)

	log.Println("Running handler tests...")
	exitCode := m.Run()

	log.Println("Tearing down handlers test environment...")
	if sqlDB, err := testDB.DB(); err == nil {
		sqlDB.Close()
	}
	os.Exit(exitCode)
}

// newTestRouter は本番と同じ DI でルーターを作成します。OAuth プロバイダだけ差し替え可能です。
func newTestRouter(db *gorm.DB, tokens service.TokenService, oauth service.OAuthProvider) http.Handler {
	userRepo := repository.NewGormUserRepository()
	progressRepo := repository.NewGormProgressRepository()
	studyRepo := repository.NewGormStudyRepository()

	return handlers.NewRouter(handlers.RouterConfig{
		Logger:         testLogger,
		DB:             db,
		Tokens:         tokens,
		TokenTTL:       testTokenTTL,
		AllowedOrigins: []string{"*"},
		AdminSeedToken: testAdminToken,
		Registry:       prometheus.NewRegistry(),
	}, handlers.Services{
		Auth:     service.NewAuthService(db, userRepo, progressRepo, tokens, oauth),
		Catalog:  service.NewCatalogService(db, repository.NewGormCatalogRepository(), 20),
		Study:    service.NewStudyService(db, studyRepo, progressRepo),
		Quiz:     service.NewQuizService(db, studyRepo, progressRepo, 5, 50),
		Progress: service.NewProgressService(db, progressRepo),
		Tasting:  service.NewTastingService(db, repository.NewGormTastingRepository(), progressRepo),
		Seed:     service.NewSeedService(db, repository.NewGormSeedRepository()),
	})
}

// insertHandlerFixtures は本番と同じ seed で参照データを投入します。カタログの期待値は seed の内容に基づきます。
func insertHandlerFixtures(db *gorm.DB) error {
	_, err := service.NewSeedService(db, repository.NewGormSeedRepository()).Seed(context.Background())
	return err
}

// --- テストヘルパー関数 (パッケージ内で共有) ---

// executeRequest はテスト用のHTTPリクエストを実行し、レスポンスレコーダーを返します。
func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)
	return rr
}

// createRequest はテスト用のHTTPリクエストオブジェクトを作成します。
// token が指定されていれば Authorization ヘッダーを付けます。
func createRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// registerTestUser は一意なメールでユーザーを登録し、トークンとユーザーIDを返します。
func registerTestUser(t *testing.T) (token, userID string) {
	t.Helper()
	email := fmt.Sprintf("user_%s@example.com", uuid.NewString()[:8])
	rr := executeRequest(createRequest(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": "secret123", "name": "Test User"}, ""))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Token, resp.UserID
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), rr.Body.String())
}
