//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"gorm.io/gorm"
)

type ProgressService interface {
	Get(ctx context.Context, userID string) (*model.ProgressResponse, error)
}

type progressService struct {
	db           *gorm.DB
	progressRepo repository.ProgressRepository
}

func NewProgressService(db *gorm.DB, progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{db: db, progressRepo: progressRepo}
}

// Get は進捗レコードが無い場合でもエラーにせず、初期状態を返します。
func (s *progressService) Get(ctx context.Context, userID string) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx)

	progress, err := s.progressRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewDefaultProgress(userID), nil
		}
		logger.Error("Failed to load progress", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}

	lessons, err := s.progressRepo.ListCompletedLessons(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load completed lessons", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}
	scores, err := s.progressRepo.ListQuizScores(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load quiz scores", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}

	resp := model.NewDefaultProgress(userID)
	resp.CompletedLessons = lessons
	resp.QuizScores = scores
	if progress.Badges != nil {
		resp.Badges = []string(progress.Badges)
	}
	resp.TotalTastings = progress.TotalTastings
	resp.CurrentStreak = progress.CurrentStreak
	if progress.LastActivityDate != nil {
		d := progress.LastActivityDate.UTC().Format(model.DateLayout)
		resp.LastActivityDate = &d
	}
	return resp, nil
}
