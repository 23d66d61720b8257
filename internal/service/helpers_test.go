package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"winestudy/internal/repository"
	"winestudy/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB はテストごとに独立したインメモリの SQLite を作成し、マイグレーションまで行います。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), logger)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// seedReferenceData は参照データ (国・トラック・レッスン・アロマ・クイズ) を投入します。
func seedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()
	_, err := service.NewSeedService(db, repository.NewGormSeedRepository()).Seed(context.Background())
	require.NoError(t, err)
}

func intPtr(v int) *int { return &v }
