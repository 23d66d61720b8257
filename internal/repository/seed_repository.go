package repository

import (
	"context"
	"fmt"

	"winestudy/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedRepository は参照データを「存在しなければ挿入」で一括投入します。
type SeedRepository interface {
	InsertCountries(ctx context.Context, tx *gorm.DB, rows []model.Country) (int64, error)
	InsertRegions(ctx context.Context, tx *gorm.DB, rows []model.Region) (int64, error)
	InsertGrapes(ctx context.Context, tx *gorm.DB, rows []model.Grape) (int64, error)
	InsertTracks(ctx context.Context, tx *gorm.DB, rows []model.StudyTrack) (int64, error)
	InsertLessons(ctx context.Context, tx *gorm.DB, rows []model.Lesson) (int64, error)
	InsertAromaTags(ctx context.Context, tx *gorm.DB, rows []model.AromaTag) (int64, error)
	InsertQuizQuestions(ctx context.Context, tx *gorm.DB, rows []model.QuizQuestion) (int64, error)
}

type gormSeedRepository struct{}

func NewGormSeedRepository() SeedRepository {
	return &gormSeedRepository{}
}

func insertIgnore[T any](ctx context.Context, tx *gorm.DB, op string, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("gormSeedRepository.%s: %w", op, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormSeedRepository) InsertCountries(ctx context.Context, tx *gorm.DB, rows []model.Country) (int64, error) {
	return insertIgnore(ctx, tx, "InsertCountries", rows)
}

func (r *gormSeedRepository) InsertRegions(ctx context.Context, tx *gorm.DB, rows []model.Region) (int64, error) {
	return insertIgnore(ctx, tx, "InsertRegions", rows)
}

func (r *gormSeedRepository) InsertGrapes(ctx context.Context, tx *gorm.DB, rows []model.Grape) (int64, error) {
	return insertIgnore(ctx, tx, "InsertGrapes", rows)
}

func (r *gormSeedRepository) InsertTracks(ctx context.Context, tx *gorm.DB, rows []model.StudyTrack) (int64, error) {
	return insertIgnore(ctx, tx, "InsertTracks", rows)
}

func (r *gormSeedRepository) InsertLessons(ctx context.Context, tx *gorm.DB, rows []model.Lesson) (int64, error) {
	return insertIgnore(ctx, tx, "InsertLessons", rows)
}

func (r *gormSeedRepository) InsertAromaTags(ctx context.Context, tx *gorm.DB, rows []model.AromaTag) (int64, error) {
	return insertIgnore(ctx, tx, "InsertAromaTags", rows)
}

func (r *gormSeedRepository) InsertQuizQuestions(ctx context.Context, tx *gorm.DB, rows []model.QuizQuestion) (int64, error) {
	return insertIgnore(ctx, tx, "InsertQuizQuestions", rows)
}
