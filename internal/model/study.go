package model

import (
	"gorm.io/datatypes"
)

// Track levels.
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type StudyTrack struct {
	TrackID       string  `gorm:"primaryKey;size:64" json:"track_id"`
	Level         string  `gorm:"size:16;not null" json:"level"`
	TitlePT       string  `gorm:"column:title_pt;not null" json:"title_pt"`
	TitleEN       string  `gorm:"column:title_en;not null" json:"title_en"`
	DescriptionPT string  `gorm:"column:description_pt" json:"description_pt"`
	DescriptionEN string  `gorm:"column:description_en" json:"description_en"`
	LessonsCount  int     `gorm:"not null;default:0" json:"lessons_count"`
	ImageURL      *string `gorm:"column:image_url" json:"image_url"`
}

func (StudyTrack) TableName() string {
	return "study_tracks"
}

type Lesson struct {
	LessonID        string `gorm:"primaryKey;size:64" json:"lesson_id"`
	TrackID         string `gorm:"size:64;not null;index" json:"track_id"`
	TitlePT         string `gorm:"column:title_pt;not null" json:"title_pt"`
	TitleEN         string `gorm:"column:title_en;not null" json:"title_en"`
	ContentPT       string `gorm:"column:content_pt" json:"content_pt"`
	ContentEN       string `gorm:"column:content_en" json:"content_en"`
	OrderIndex      int    `gorm:"not null;default:0" json:"order_index"`
	DurationMinutes int    `gorm:"not null;default:0" json:"duration_minutes"`
}

func (Lesson) TableName() string {
	return "lessons"
}

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
)

// QuizQuestion の CorrectAnswer は選択肢リストのインデックス (0始まり) です。
type QuizQuestion struct {
	QuestionID    string                      `gorm:"primaryKey;size:64" json:"question_id"`
	TrackID       string                      `gorm:"size:64;not null;index" json:"track_id"`
	LessonID      *string                     `gorm:"size:64" json:"lesson_id"`
	QuestionType  string                      `gorm:"size:32;not null;default:multiple_choice" json:"question_type"`
	QuestionPT    string                      `gorm:"column:question_pt;not null" json:"question_pt"`
	QuestionEN    string                      `gorm:"column:question_en;not null" json:"question_en"`
	OptionsPT     datatypes.JSONSlice[string] `gorm:"column:options_pt" json:"options_pt"`
	OptionsEN     datatypes.JSONSlice[string] `gorm:"column:options_en" json:"options_en"`
	CorrectAnswer int                         `gorm:"not null" json:"correct_answer"`
	ExplanationPT string                      `gorm:"column:explanation_pt" json:"explanation_pt"`
	ExplanationEN string                      `gorm:"column:explanation_en" json:"explanation_en"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizSubmitRequest の SelectedAnswer は 0 も有効な値なのでポインタで受けます。
type QuizSubmitRequest struct {
	QuestionID     string `json:"question_id" validate:"required"`
	SelectedAnswer *int   `json:"selected_answer" validate:"required"`
}

type QuizSubmitResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	ExplanationPT string `json:"explanation_pt"`
	ExplanationEN string `json:"explanation_en"`
}

type LessonCompleteResponse struct {
	Message  string `json:"message"`
	LessonID string `json:"lesson_id"`
}

// SeedResponse は参照データ投入の結果です。Counts は今回新たに挿入された行数です。
type SeedResponse struct {
	Message string           `json:"message"`
	Counts  map[string]int64 `json:"counts"`
}
