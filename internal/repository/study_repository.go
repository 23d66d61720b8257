package repository

import (
	"context"
	"fmt"

	"winestudy/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudyRepository interface {
	ListTracks(ctx context.Context, db *gorm.DB) ([]model.StudyTrack, error)
	FindTrack(ctx context.Context, db *gorm.DB, trackID string) (*model.StudyTrack, error)
	ListLessons(ctx context.Context, db *gorm.DB, trackID string) ([]model.Lesson, error)
	FindLesson(ctx context.Context, db *gorm.DB, lessonID string) (*model.Lesson, error)
	// RandomQuestions はトラックの問題を無作為な順序で最大 limit 件返します (重複なし)。
	RandomQuestions(ctx context.Context, db *gorm.DB, trackID string, limit int) ([]model.QuizQuestion, error)
	FindQuestion(ctx context.Context, db *gorm.DB, questionID string) (*model.QuizQuestion, error)
}

type gormStudyRepository struct{}

func NewGormStudyRepository() StudyRepository {
	return &gormStudyRepository{}
}

// levelOrder は basic < intermediate < advanced の順に並べるための式です。
var levelOrder = clause.OrderBy{Expression: clause.Expr{
	SQL: "CASE level WHEN ? THEN 1 WHEN ? THEN 2 WHEN ? THEN 3 ELSE 4 END, track_id",
	Vars: []interface{}{
		model.LevelBasic, model.LevelIntermediate, model.LevelAdvanced,
	},
	WithoutParentheses: true,
}}

func (r *gormStudyRepository) ListTracks(ctx context.Context, db *gorm.DB) ([]model.StudyTrack, error) {
	tracks := []model.StudyTrack{}
	if err := db.WithContext(ctx).Order(levelOrder).Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("gormStudyRepository.ListTracks: %w", err)
	}
	return tracks, nil
}

func (r *gormStudyRepository) FindTrack(ctx context.Context, db *gorm.DB, trackID string) (*model.StudyTrack, error) {
	var track model.StudyTrack
	if err := first(db.WithContext(ctx).Where("track_id = ?", trackID), &track); err != nil {
		return nil, wrapFind("gormStudyRepository.FindTrack", err)
	}
	return &track, nil
}

func (r *gormStudyRepository) ListLessons(ctx context.Context, db *gorm.DB, trackID string) ([]model.Lesson, error) {
	lessons := []model.Lesson{}
	err := db.WithContext(ctx).
		Where("track_id = ?", trackID).
		Order("order_index ASC, lesson_id ASC").
		Find(&lessons).Error
	if err != nil {
		return nil, fmt.Errorf("gormStudyRepository.ListLessons: %w", err)
	}
	return lessons, nil
}

func (r *gormStudyRepository) FindLesson(ctx context.Context, db *gorm.DB, lessonID string) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := first(db.WithContext(ctx).Where("lesson_id = ?", lessonID), &lesson); err != nil {
		return nil, wrapFind("gormStudyRepository.FindLesson", err)
	}
	return &lesson, nil
}

// RandomQuestions は RANDOM() で並べ替えて LIMIT します。postgres / sqlite の両方で使える関数です。
func (r *gormStudyRepository) RandomQuestions(ctx context.Context, db *gorm.DB, trackID string, limit int) ([]model.QuizQuestion, error) {
	questions := []model.QuizQuestion{}
	err := db.WithContext(ctx).
		Where("track_id = ?", trackID).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("gormStudyRepository.RandomQuestions: %w", err)
	}
	return questions, nil
}

func (r *gormStudyRepository) FindQuestion(ctx context.Context, db *gorm.DB, questionID string) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := first(db.WithContext(ctx).Where("question_id = ?", questionID), &question); err != nil {
		return nil, wrapFind("gormStudyRepository.FindQuestion", err)
	}
	return &question, nil
}
