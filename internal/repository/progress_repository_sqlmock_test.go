package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"winestudy/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockPostgres は PostgreSQL 方言で SQL を組み立て、sqlmock に流す gorm.DB を返します。
// SQLite のテストでは見えない PostgreSQL 向けの SQL の形を確認するために使います。
func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestProgressRepository_PostgresSQL(t *testing.T) {
	repo := repository.NewGormProgressRepository()

	testCases := []struct {
		name    string
		run     func(db *gorm.DB) error
		expect  func(mock sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "AdjustTastings の加算",
			run:  func(db *gorm.DB) error { return repo.AdjustTastings(ctx, db, "user_1", 1) },
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_progress" SET "total_tastings"=total_tastings + $1 WHERE user_id = $2`)).
					WithArgs(1, "user_1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "AdjustTastings の減算は 0 で止める",
			run:  func(db *gorm.DB) error { return repo.AdjustTastings(ctx, db, "user_1", -1) },
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_progress" SET "total_tastings"=CASE WHEN total_tastings + $1 < 0 THEN 0 ELSE total_tastings + $2 END WHERE user_id = $3`)).
					WithArgs(-1, -1, "user_1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "AdjustTastings の DB エラー",
			run:  func(db *gorm.DB) error { return repo.AdjustTastings(ctx, db, "user_1", -1) },
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "user_progress"`).WillReturnError(errors.New("connection reset by peer"))
			},
			wantErr: "gormProgressRepository.AdjustTastings: connection reset by peer",
		},
		{
			name: "IncrementQuizScore は upsert",
			run:  func(db *gorm.DB) error { return repo.IncrementQuizScore(ctx, db, "user_1", "basic") },
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "quiz_scores" ("user_id","track_id","score") VALUES ($1,$2,$3) ON CONFLICT ("user_id","track_id") DO UPDATE SET "score"=quiz_scores.score + 1`)).
					WithArgs("user_1", "basic", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "TouchActivity は UTC の日付",
			run: func(db *gorm.DB) error {
				return repo.TouchActivity(ctx, db, "user_1", time.Date(2024, 2, 29, 22, 0, 0, 0, time.FixedZone("BRT", -3*60*60)))
			},
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_progress" SET "last_activity_date"=$1 WHERE user_id = $2`)).
					WithArgs(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "user_1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockPostgres(t)
			tc.expect(mock)

			err := tc.run(db)
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
