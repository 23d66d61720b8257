//go:generate mockery --name TastingService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const msgTastingNotFound = "Tasting not found"

type TastingService interface {
	List(ctx context.Context, userID string) ([]model.TastingNote, error)
	Get(ctx context.Context, userID, tastingID string) (*model.TastingNote, error)
	Create(ctx context.Context, userID string, req *model.CreateTastingRequest) (*model.TastingNote, error)
	Delete(ctx context.Context, userID, tastingID string) (*model.MessageResponse, error)
}

type tastingService struct {
	db           *gorm.DB
	tastingRepo  repository.TastingRepository
	progressRepo repository.ProgressRepository
}

func NewTastingService(db *gorm.DB, tastingRepo repository.TastingRepository, progressRepo repository.ProgressRepository) TastingService {
	return &tastingService{db: db, tastingRepo: tastingRepo, progressRepo: progressRepo}
}

func errTastingNotFound() *model.AppError {
	return model.NewAppError("TASTING_NOT_FOUND", msgTastingNotFound, "", model.ErrNotFound)
}

func (s *tastingService) List(ctx context.Context, userID string) ([]model.TastingNote, error) {
	notes, err := s.tastingRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list tastings", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}
	return notes, nil
}

// Get は他ユーザーの記録も「存在しない」として 404 を返します。
func (s *tastingService) Get(ctx context.Context, userID, tastingID string) (*model.TastingNote, error) {
	note, err := s.tastingRepo.FindByIDAndUser(ctx, s.db, tastingID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errTastingNotFound()
		}
		middleware.GetLogger(ctx).Error("Failed to get tasting", "error", err, "tasting_id", tastingID)
		return nil, errInternal(err)
	}
	return note, nil
}

// subRecord は appearance などのサブレコードを検証します。未指定・null は {} として保存します。
func subRecord(field string, raw json.RawMessage) (datatypes.JSON, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return datatypes.JSON("{}"), nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, model.NewAppError("VALIDATION_ERROR", field+" must be an object", field, model.ErrInvalidInput)
	}
	return datatypes.JSON(trimmed), nil
}

func (s *tastingService) Create(ctx context.Context, userID string, req *model.CreateTastingRequest) (*model.TastingNote, error) {
	logger := middleware.GetLogger(ctx)

	wineName := strings.TrimSpace(req.WineName)
	if wineName == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "wine_name is required", "wine_name", model.ErrInvalidInput)
	}

	note := &model.TastingNote{
		TastingID: NewPrefixedID("tasting_"),
		UserID:    userID,
		WineName:  wineName,
		Producer:  req.Producer,
		Vintage:   req.Vintage,
		Region:    req.Region,
		GrapeIDs:  datatypes.JSONSlice[string]{},
		RegionID:  req.RegionID,
		Notes:     req.Notes,
	}
	if req.GrapeIDs != nil {
		note.GrapeIDs = datatypes.JSONSlice[string](req.GrapeIDs)
	}

	var err error
	if note.Appearance, err = subRecord("appearance", req.Appearance); err != nil {
		return nil, err
	}
	if note.Nose, err = subRecord("nose", req.Nose); err != nil {
		return nil, err
	}
	if note.Palate, err = subRecord("palate", req.Palate); err != nil {
		return nil, err
	}
	if note.Conclusion, err = subRecord("conclusion", req.Conclusion); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tastingRepo.Create(ctx, tx, note); err != nil {
			return err
		}
		if err := s.progressRepo.Create(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.progressRepo.AdjustTastings(ctx, tx, userID, 1); err != nil {
			return err
		}
		return s.progressRepo.TouchActivity(ctx, tx, userID, note.CreatedAt)
	})
	if err != nil {
		logger.Error("Failed to create tasting", "error", err, "user_id", userID)
		return nil, errInternal(err)
	}

	logger.Info("Tasting created", "user_id", userID, "tasting_id", note.TastingID)
	return note, nil
}

// Delete は (id, owner) を同時に条件にするため、他ユーザーの記録は削除できず 404 になります。
// カウンタは削除が成功した場合のみ減らします。
func (s *tastingService) Delete(ctx context.Context, userID, tastingID string) (*model.MessageResponse, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tastingRepo.DeleteByIDAndUser(ctx, tx, tastingID, userID); err != nil {
			return err
		}
		return s.progressRepo.AdjustTastings(ctx, tx, userID, -1)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errTastingNotFound()
		}
		logger.Error("Failed to delete tasting", "error", err, "user_id", userID, "tasting_id", tastingID)
		return nil, errInternal(err)
	}

	logger.Info("Tasting deleted", "user_id", userID, "tasting_id", tastingID)
	return &model.MessageResponse{Message: "Tasting deleted"}, nil
}
