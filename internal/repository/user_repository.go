package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"winestudy/internal/middleware"
	"winestudy/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	FindByEmailOrGoogleID(ctx context.Context, db *gorm.DB, email, googleID string) (*model.User, error)
	UpdatePicture(ctx context.Context, db *gorm.DB, userID string, picture string) error
	UpdateLanguage(ctx context.Context, db *gorm.DB, userID string, language string) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

// NormalizeEmail はメールアドレスを比較・保存用に正規化します (小文字化)。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	user.Email = NormalizeEmail(user.Email)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "email", user.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "user_id", user.UserID)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	// 保存時に小文字化しているため、比較側も正規化するだけで大文字小文字を無視できる
	result := db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by email in DB", "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.FindByEmail: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmailOrGoogleID(ctx context.Context, db *gorm.DB, email, googleID string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	// メール一致を優先する
	result := db.WithContext(ctx).
		Where("email = ? OR google_id = ?", NormalizeEmail(email), googleID).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN email = ? THEN 0 ELSE 1 END",
			Vars:               []interface{}{NormalizeEmail(email)},
			WithoutParentheses: true,
		}}).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by email or google id in DB", "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.FindByEmailOrGoogleID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) UpdatePicture(ctx context.Context, db *gorm.DB, userID string, picture string) error {
	result := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Update("picture", picture)
	if result.Error != nil {
		return fmt.Errorf("gormUserRepository.UpdatePicture: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) UpdateLanguage(ctx context.Context, db *gorm.DB, userID string, language string) error {
	result := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Update("preferred_language", language)
	if result.Error != nil {
		return fmt.Errorf("gormUserRepository.UpdateLanguage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
