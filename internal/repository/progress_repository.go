// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"winestudy/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, userID string) error
	Find(ctx context.Context, db *gorm.DB, userID string) (*model.UserProgress, error)
	// AddCompletedLesson は未完了の場合のみ追加します。追加した場合 true を返します。
	AddCompletedLesson(ctx context.Context, tx *gorm.DB, userID, lessonID string, at time.Time) (bool, error)
	ListCompletedLessons(ctx context.Context, db *gorm.DB, userID string) ([]string, error)
	IncrementQuizScore(ctx context.Context, tx *gorm.DB, userID, trackID string) error
	ListQuizScores(ctx context.Context, db *gorm.DB, userID string) (map[string]int, error)
	// AdjustTastings は total_tastings を delta だけ増減します (0 未満にはならない)。
	AdjustTastings(ctx context.Context, tx *gorm.DB, userID string, delta int) error
	TouchActivity(ctx context.Context, tx *gorm.DB, userID string, at time.Time) error
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func newProgressRow(userID string) *model.UserProgress {
	return &model.UserProgress{
		UserID: userID,
		Badges: datatypes.JSONSlice[string]{},
	}
}

// Create は進捗レコードを作成します。既に存在する場合は何もしません (同時登録でも1行のみ)。
func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, userID string) error {
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(newProgressRow(userID))
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

// AddCompletedLesson は (user_id, lesson_id) の主キー衝突を DO NOTHING で吸収するため、
// 同時に同じレッスンを完了しても1行しか残りません。
func (r *gormProgressRepository) AddCompletedLesson(ctx context.Context, tx *gorm.DB, userID, lessonID string, at time.Time) (bool, error) {
	row := &model.CompletedLesson{UserID: userID, LessonID: lessonID, CompletedAt: at}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
			DoNothing: true,
		}).
		Create(row)
	if result.Error != nil {
		return false, fmt.Errorf("gormProgressRepository.AddCompletedLesson: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormProgressRepository) ListCompletedLessons(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	lessonIDs := []string{}
	result := db.WithContext(ctx).
		Model(&model.CompletedLesson{}).
		Where("user_id = ?", userID).
		Order("completed_at ASC, lesson_id ASC").
		Pluck("lesson_id", &lessonIDs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.ListCompletedLessons: %w", result.Error)
	}
	return lessonIDs, nil
}

// IncrementQuizScore は存在しなければ 1 で作成し、存在すれば +1 します (upsert)。
func (r *gormProgressRepository) IncrementQuizScore(ctx context.Context, tx *gorm.DB, userID, trackID string) error {
	row := &model.QuizScore{UserID: userID, TrackID: trackID, Score: 1}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "track_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"score": gorm.Expr("quiz_scores.score + 1")}),
		}).
		Create(row)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.IncrementQuizScore: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) ListQuizScores(ctx context.Context, db *gorm.DB, userID string) (map[string]int, error) {
	var rows []model.QuizScore
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormProgressRepository.ListQuizScores: %w", err)
	}
	scores := make(map[string]int, len(rows))
	for _, row := range rows {
		scores[row.TrackID] = row.Score
	}
	return scores, nil
}

// AdjustTastings は読み取り→書き込みをせず、UPDATE 文一つで増減するためロストアップデートが起きません。
func (r *gormProgressRepository) AdjustTastings(ctx context.Context, tx *gorm.DB, userID string, delta int) error {
	var expr clause.Expr
	if delta >= 0 {
		expr = gorm.Expr("total_tastings + ?", delta)
	} else {
		expr = gorm.Expr("CASE WHEN total_tastings + ? < 0 THEN 0 ELSE total_tastings + ? END", delta, delta)
	}
	result := tx.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_tastings", expr)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.AdjustTastings: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) TouchActivity(ctx context.Context, tx *gorm.DB, userID string, at time.Time) error {
	result := tx.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumn("last_activity_date", model.ActivityDate(at))
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.TouchActivity: %w", result.Error)
	}
	return nil
}
