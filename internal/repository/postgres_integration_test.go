//go:build integration

// postgres_integration_test.go
package repository_test

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"winestudy/internal/model"
	"winestudy/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

// TestMain は PostgreSQL のコンテナを起動し、実際の upsert と一意制約を確認できるようにします。
// 実行: go test -tags=integration ./internal/repository/...
func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=winestudy",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}
	resource.Expire(180) // 後始末に失敗してもコンテナを残さない

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	databaseURL := fmt.Sprintf("postgres://user:secret@%s:%s/winestudy?sslmode=disable", dbHost, resource.GetPort("5432/tcp"))
	logger.Info("PostgreSQL container started", slog.String("container_id_short", resource.Container.ID[:12]), slog.String("host", dbHost))

	if err = pool.Retry(func() error {
		var errRetry error
		pgDB, errRetry = repository.NewDB(databaseURL, logger)
		if errRetry != nil {
			logger.Warn("Retry: DB connection attempt failed.", slog.Any("error", errRetry))
		}
		return errRetry
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to database: %s", err)
	}

	if err := repository.AutoMigrate(pgDB); err != nil {
		pool.Purge(resource)
		log.Fatalf("Failed to migrate database: %s", err)
	}

	exitCode := m.Run()

	if sqlDB, err := pgDB.DB(); err == nil {
		sqlDB.Close()
	}
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(exitCode)
}

func TestPostgres_ConcurrentProgressUpdates(t *testing.T) {
	repo := repository.NewGormProgressRepository()
	userID := "user_" + uuid.NewString()[:8]
	require.NoError(t, repo.Create(ctx, pgDB, userID))

	const workers = 20
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return pgDB.Transaction(func(tx *gorm.DB) error {
				if err := repo.IncrementQuizScore(ctx, tx, userID, "basic"); err != nil {
					return err
				}
				if _, err := repo.AddCompletedLesson(ctx, tx, userID, "basic_1", time.Now()); err != nil {
					return err
				}
				return repo.AdjustTastings(ctx, tx, userID, 1)
			})
		})
	}
	require.NoError(t, g.Wait())

	scores, err := repo.ListQuizScores(ctx, pgDB, userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"basic": workers}, scores, "加算が失われない")

	lessons, err := repo.ListCompletedLessons(ctx, pgDB, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"basic_1"}, lessons)

	// 減算を多めに流しても 0 で止まる
	for i := 0; i < workers+5; i++ {
		g.Go(func() error { return repo.AdjustTastings(ctx, pgDB, userID, -1) })
	}
	require.NoError(t, g.Wait())

	progress, err := repo.Find(ctx, pgDB, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.TotalTastings)
}

func TestPostgres_UserUniqueEmail(t *testing.T) {
	repo := repository.NewGormUserRepository()
	email := fmt.Sprintf("pg_%s@example.com", uuid.NewString()[:8])

	require.NoError(t, repo.Create(ctx, pgDB, &model.User{UserID: "user_" + uuid.NewString()[:8], Email: email, Name: "PG", PreferredLanguage: "pt"}))

	err := repo.Create(ctx, pgDB, &model.User{UserID: "user_" + uuid.NewString()[:8], Email: email, Name: "PG 2", PreferredLanguage: "pt"})
	assert.ErrorIs(t, err, model.ErrConflict)
}
