//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"gorm.io/gorm"
)

type QuizService interface {
	Questions(ctx context.Context, trackID string, limit int) ([]model.QuizQuestion, error)
	// Submit の identity が nil の場合は採点結果のみ返し、スコアは更新しません。
	Submit(ctx context.Context, identity *model.Identity, req *model.QuizSubmitRequest) (*model.QuizSubmitResponse, error)
}

type quizService struct {
	db           *gorm.DB
	studyRepo    repository.StudyRepository
	progressRepo repository.ProgressRepository
	defaultLimit int
	maxLimit     int
}

func NewQuizService(db *gorm.DB, studyRepo repository.StudyRepository, progressRepo repository.ProgressRepository, defaultLimit, maxLimit int) QuizService {
	return &quizService{
		db:           db,
		studyRepo:    studyRepo,
		progressRepo: progressRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// ClampLimit は 0 以下をデフォルト値に、上限超過を上限値に丸めます。
func ClampLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		return maxLimit
	}
	return limit
}

func (s *quizService) Questions(ctx context.Context, trackID string, limit int) ([]model.QuizQuestion, error) {
	limit = ClampLimit(limit, s.defaultLimit, s.maxLimit)
	questions, err := s.studyRepo.RandomQuestions(ctx, s.db, trackID, limit)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return questions, nil
}

func (s *quizService) Submit(ctx context.Context, identity *model.Identity, req *model.QuizSubmitRequest) (*model.QuizSubmitResponse, error) {
	logger := middleware.GetLogger(ctx)

	question, err := s.studyRepo.FindQuestion(ctx, s.db, req.QuestionID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "QUESTION_NOT_FOUND", "Question not found")
	}

	correct := *req.SelectedAnswer == question.CorrectAnswer
	resp := &model.QuizSubmitResponse{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		ExplanationPT: question.ExplanationPT,
		ExplanationEN: question.ExplanationEN,
	}

	if identity == nil || !correct {
		return resp, nil
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progressRepo.Create(ctx, tx, identity.UserID); err != nil {
			return err
		}
		if err := s.progressRepo.IncrementQuizScore(ctx, tx, identity.UserID, question.TrackID); err != nil {
			return err
		}
		return s.progressRepo.TouchActivity(ctx, tx, identity.UserID, now)
	})
	if err != nil {
		logger.Error("Failed to record quiz score", "error", err, "user_id", identity.UserID, "track_id", question.TrackID)
		return nil, errInternal(err)
	}
	logger.Info("Quiz score incremented", "user_id", identity.UserID, "track_id", question.TrackID)
	return resp, nil
}
