package repository

import (
	"context"
	"fmt"

	"winestudy/internal/middleware"
	"winestudy/internal/model"

	"gorm.io/gorm"
)

// TastingRepository のすべての読み書きは (tasting_id, user_id) の組で絞り込みます。
// 他人の記録は存在しないものとして扱われ、呼び出し側では区別できません。
type TastingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.TastingNote) error
	ListByUser(ctx context.Context, db *gorm.DB, userID string) ([]model.TastingNote, error)
	FindByIDAndUser(ctx context.Context, db *gorm.DB, tastingID, userID string) (*model.TastingNote, error)
	// DeleteByIDAndUser は削除できなかった場合 model.ErrNotFound を返します。
	DeleteByIDAndUser(ctx context.Context, tx *gorm.DB, tastingID, userID string) error
}

type gormTastingRepository struct{}

func NewGormTastingRepository() TastingRepository {
	return &gormTastingRepository{}
}

func (r *gormTastingRepository) Create(ctx context.Context, tx *gorm.DB, note *model.TastingNote) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(note).Error; err != nil {
		logger.Error("Error creating tasting note in DB", "error", err, "user_id", note.UserID)
		return fmt.Errorf("gormTastingRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTastingRepository) ListByUser(ctx context.Context, db *gorm.DB, userID string) ([]model.TastingNote, error) {
	notes := []model.TastingNote{}
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, tasting_id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("gormTastingRepository.ListByUser: %w", err)
	}
	return notes, nil
}

func (r *gormTastingRepository) FindByIDAndUser(ctx context.Context, db *gorm.DB, tastingID, userID string) (*model.TastingNote, error) {
	var note model.TastingNote
	err := first(db.WithContext(ctx).Where("tasting_id = ? AND user_id = ?", tastingID, userID), &note)
	if err != nil {
		return nil, wrapFind("gormTastingRepository.FindByIDAndUser", err)
	}
	return &note, nil
}

func (r *gormTastingRepository) DeleteByIDAndUser(ctx context.Context, tx *gorm.DB, tastingID, userID string) error {
	result := tx.WithContext(ctx).
		Where("tasting_id = ? AND user_id = ?", tastingID, userID).
		Delete(&model.TastingNote{})
	if result.Error != nil {
		return fmt.Errorf("gormTastingRepository.DeleteByIDAndUser: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
