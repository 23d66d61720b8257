package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"winestudy/internal/model"
)

// NewGormLogger は slog のハンドラに出力する GORM ロガーを作成します。
// テスト (sqlite) でも同じロガーを使います。
func NewGormLogger(appLogger *slog.Logger) gormlogger.Interface {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値
	)
	return slogGormLogger.LogMode(gormLogLevel)
}

// NewDB は DATABASE_URL のスキームに応じて接続します。
// "sqlite:" または "file:" で始まる場合は SQLite (ローカル開発・テスト用)、それ以外は PostgreSQL です。
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	dialector, isSQLite := dialectorFor(databaseURL)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(appLogger),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	// コネクションプールの設定
	if isSQLite {
		// ★ SQLite は書き込みが1本なので、接続も1本に絞ってロック競合を避ける
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM", slog.Bool("sqlite", isSQLite))
	return db, nil
}

func dialectorFor(databaseURL string) (gorm.Dialector, bool) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite:")), true
	case strings.HasPrefix(databaseURL, "file:"):
		return sqlite.Open(databaseURL), true
	default:
		return postgres.Open(databaseURL), false
	}
}

// AllModels はマイグレーション対象のモデル一覧です。
func AllModels() []interface{} {
	return []interface{}{
		&model.User{},
		&model.UserProgress{},
		&model.CompletedLesson{},
		&model.QuizScore{},
		&model.Country{},
		&model.Region{},
		&model.Grape{},
		&model.AromaTag{},
		&model.StudyTrack{},
		&model.Lesson{},
		&model.QuizQuestion{},
		&model.TastingNote{},
	}
}

// AutoMigrate はすべてのテーブルを作成・更新します。
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("repository.AutoMigrate: %w", err)
	}
	return nil
}

// isUniqueViolation は一意制約違反かどうかを判定します。
// TranslateError が効かない経路 (生の pgx エラー) にも対応します。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
