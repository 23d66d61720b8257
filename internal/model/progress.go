// internal/model/progress.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserProgress はユーザーごとの学習・テイスティングの集計です。
// 完了レッスンとクイズスコアは別テーブルに持ち、競合時も行単位で原子的に更新できるようにしています。
type UserProgress struct {
	UserID           string                      `gorm:"primaryKey;size:64"`
	Badges           datatypes.JSONSlice[string] `gorm:"not null"`
	TotalTastings    int                         `gorm:"not null;default:0"`
	CurrentStreak    int                         `gorm:"not null;default:0"`
	LastActivityDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// CompletedLesson は (user_id, lesson_id) の複合主キーで重複を防ぎます。
type CompletedLesson struct {
	UserID      string    `gorm:"primaryKey;size:64"`
	LessonID    string    `gorm:"primaryKey;size:64"`
	CompletedAt time.Time `gorm:"not null"`
}

func (CompletedLesson) TableName() string {
	return "completed_lessons"
}

// QuizScore はトラックごとの正解数です。
type QuizScore struct {
	UserID  string `gorm:"primaryKey;size:64"`
	TrackID string `gorm:"primaryKey;size:64"`
	Score   int    `gorm:"not null;default:0"`
}

func (QuizScore) TableName() string {
	return "quiz_scores"
}

// ProgressResponse は /api/progress のレスポンスです。
type ProgressResponse struct {
	UserID           string         `json:"user_id"`
	CompletedLessons []string       `json:"completed_lessons"`
	QuizScores       map[string]int `json:"quiz_scores"`
	Badges           []string       `json:"badges"`
	TotalTastings    int            `json:"total_tastings"`
	CurrentStreak    int            `json:"current_streak"`
	LastActivityDate *string        `json:"last_activity_date,omitempty"`
}

// NewDefaultProgress は進捗レコードが未作成のユーザー向けの初期値です。
func NewDefaultProgress(userID string) *ProgressResponse {
	return &ProgressResponse{
		UserID:           userID,
		CompletedLessons: []string{},
		QuizScores:       map[string]int{},
		Badges:           []string{},
	}
}

// ActivityDate は last_activity_date に保存する日付 (UTC の 0 時) を返します。
func ActivityDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const DateLayout = "2006-01-02"
