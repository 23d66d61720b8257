//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"gorm.io/gorm"
)

type StudyService interface {
	ListTracks(ctx context.Context) ([]model.StudyTrack, error)
	GetTrack(ctx context.Context, trackID string) (*model.StudyTrack, error)
	ListLessons(ctx context.Context, trackID string) ([]model.Lesson, error)
	GetLesson(ctx context.Context, lessonID string) (*model.Lesson, error)
	CompleteLesson(ctx context.Context, userID, lessonID string) (*model.LessonCompleteResponse, error)
}

type studyService struct {
	db           *gorm.DB
	studyRepo    repository.StudyRepository
	progressRepo repository.ProgressRepository
}

func NewStudyService(db *gorm.DB, studyRepo repository.StudyRepository, progressRepo repository.ProgressRepository) StudyService {
	return &studyService{db: db, studyRepo: studyRepo, progressRepo: progressRepo}
}

func (s *studyService) ListTracks(ctx context.Context) ([]model.StudyTrack, error) {
	tracks, err := s.studyRepo.ListTracks(ctx, s.db)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return tracks, nil
}

func (s *studyService) GetTrack(ctx context.Context, trackID string) (*model.StudyTrack, error) {
	track, err := s.studyRepo.FindTrack(ctx, s.db, trackID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "TRACK_NOT_FOUND", "Track not found")
	}
	return track, nil
}

// ListLessons は存在しないトラックでも空配列を返します。
func (s *studyService) ListLessons(ctx context.Context, trackID string) ([]model.Lesson, error) {
	lessons, err := s.studyRepo.ListLessons(ctx, s.db, trackID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "", "")
	}
	return lessons, nil
}

func (s *studyService) GetLesson(ctx context.Context, lessonID string) (*model.Lesson, error) {
	lesson, err := s.studyRepo.FindLesson(ctx, s.db, lessonID)
	if err != nil {
		return nil, notFoundOr(ctx, err, "LESSON_NOT_FOUND", "Lesson not found")
	}
	return lesson, nil
}

// CompleteLesson はレッスンの存在を確認してから完了を記録します。
// 2回目以降の完了は何も追加しませんが、成功として扱います (冪等)。
func (s *studyService) CompleteLesson(ctx context.Context, userID, lessonID string) (*model.LessonCompleteResponse, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.GetLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	now := time.Now()
	var added bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 登録前から残っているユーザーなど、進捗レコードが無い場合に備えて作成しておく
		if err := s.progressRepo.Create(ctx, tx, userID); err != nil {
			return err
		}
		var err error
		added, err = s.progressRepo.AddCompletedLesson(ctx, tx, userID, lessonID, now)
		if err != nil {
			return err
		}
		return s.progressRepo.TouchActivity(ctx, tx, userID, now)
	})
	if err != nil {
		logger.Error("Failed to complete lesson", "error", err, "user_id", userID, "lesson_id", lessonID)
		return nil, errInternal(err)
	}

	logger.Info("Lesson completed", "user_id", userID, "lesson_id", lessonID, "newly_added", added)
	return &model.LessonCompleteResponse{Message: "Lesson marked as complete", LessonID: lessonID}, nil
}
