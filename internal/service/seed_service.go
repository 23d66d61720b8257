//go:generate mockery --name SeedService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"gorm.io/gorm"
)

const msgSeeded = "Database seeded successfully"

// SeedService は参照データを投入します。既存の行は上書きしないため、何度実行しても結果は同じです。
type SeedService interface {
	Seed(ctx context.Context) (*model.SeedResponse, error)
}

type seedService struct {
	db   *gorm.DB
	repo repository.SeedRepository
}

func NewSeedService(db *gorm.DB, repo repository.SeedRepository) SeedService {
	return &seedService{db: db, repo: repo}
}

func (s *seedService) Seed(ctx context.Context) (*model.SeedResponse, error) {
	logger := middleware.GetLogger(ctx)
	counts := map[string]int64{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			run  func() (int64, error)
		}{
			{"countries", func() (int64, error) { return s.repo.InsertCountries(ctx, tx, seedCountries) }},
			{"regions", func() (int64, error) { return s.repo.InsertRegions(ctx, tx, seedRegions) }},
			{"grapes", func() (int64, error) { return s.repo.InsertGrapes(ctx, tx, seedGrapes) }},
			{"study_tracks", func() (int64, error) { return s.repo.InsertTracks(ctx, tx, seedTracks) }},
			{"lessons", func() (int64, error) { return s.repo.InsertLessons(ctx, tx, seedLessons) }},
			{"aroma_tags", func() (int64, error) { return s.repo.InsertAromaTags(ctx, tx, seedAromaTags) }},
			{"quiz_questions", func() (int64, error) { return s.repo.InsertQuizQuestions(ctx, tx, seedQuizQuestions) }},
		}
		for _, step := range steps {
			n, err := step.run()
			if err != nil {
				return err
			}
			counts[step.name] = n
		}
		return nil
	})
	if err != nil {
		logger.Error("Seed failed", "error", err)
		return nil, errInternal(err)
	}

	logger.Info("Seed completed", "inserted", counts)
	return &model.SeedResponse{Message: msgSeeded, Counts: counts}, nil
}
