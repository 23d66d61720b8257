//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"winestudy/internal/config"
	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordHashCost は bcrypt のコストです。
const PasswordHashCost = bcrypt.DefaultCost

// 認証失敗時のメッセージ。メール不明とパスワード不一致で同じものを返す。
const msgInvalidCredentials = "Invalid credentials"

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	OAuthSession(ctx context.Context, code string) (*model.AuthResponse, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	UpdateLanguage(ctx context.Context, userID, language string) (*model.LanguageResponse, error)
}

type authService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	tokens       TokenService
	oauth        OAuthProvider
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, progressRepo repository.ProgressRepository, tokens TokenService, oauth OAuthProvider) AuthService {
	return &authService{
		db:           db,
		userRepo:     userRepo,
		progressRepo: progressRepo,
		tokens:       tokens,
		oauth:        oauth,
	}
}

// NewPrefixedID は "user_" などの接頭辞に uuid の先頭12桁 (16進) を付けた ID を生成します。
func NewPrefixedID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func errInternal(err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", model.MsgInternalServerError, "", err)
}

// Register はユーザーと進捗レコードを1つのトランザクションで作成し、トークンを発行します。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)
	email := repository.NormalizeEmail(req.Email)

	// bcrypt は遅いので、トランザクションの外でハッシュ化する
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordHashCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, errInternal(err)
	}
	hash := string(hashed)

	user := &model.User{
		UserID:            NewPrefixedID("user_"),
		Email:             email,
		PasswordHash:      &hash,
		Name:              strings.TrimSpace(req.Name),
		PreferredLanguage: config.DefaultLanguage,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists", "email", email)
			return errDuplicateEmail(nil)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return errInternal(err)
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// 同時登録で一意制約に当たった場合
			if errors.Is(err, model.ErrConflict) {
				return errDuplicateEmail(err)
			}
			return errInternal(err)
		}
		if err := s.progressRepo.Create(ctx, tx, user.UserID); err != nil {
			logger.Error("Failed to create progress for new user", "error", err, "user_id", user.UserID)
			return errInternal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.UserID)
	return s.authResponse(ctx, user, nil)
}

func errDuplicateEmail(cause error) *model.AppError {
	if cause == nil {
		cause = model.ErrConflict
	}
	return model.NewAppError("DUPLICATE_EMAIL", "Email already registered", "email", cause)
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy は存在しないメールでも bcrypt 比較を行い、応答時間で登録有無が分からないようにします。
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), PasswordHashCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login はメールアドレス不明・パスワード不一致のどちらでも同じエラーを返します。
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)
	invalid := model.NewAppError("INVALID_CREDENTIALS", msgInvalidCredentials, "", model.ErrUnauthorized)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			compareDummy(req.Password)
			logger.Warn("Login failed: user not found")
			return nil, invalid
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, errInternal(err)
	}

	if user.PasswordHash == nil {
		// OAuth のみのアカウント
		compareDummy(req.Password)
		logger.Warn("Login failed: account has no password", "user_id", user.UserID)
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, invalid
	}

	logger.Info("User logged in", "user_id", user.UserID)
	return s.authResponse(ctx, user, nil)
}

// OAuthSession は認可コードを交換し、メールまたはプロバイダIDでユーザーを検索・作成します。
func (s *authService) OAuthSession(ctx context.Context, code string) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	profile, err := s.oauth.FetchProfile(ctx, code)
	if err != nil {
		// コードの期限切れなど、呼び出し側で直せる失敗として 400 を返す
		logger.Warn("OAuth profile fetch failed", "error", err)
		if errors.Is(err, ErrOAuthExchange) {
			return nil, model.NewAppError("OAUTH_EXCHANGE_FAILED", "Failed to exchange authorization code", "code", model.ErrUpstream)
		}
		return nil, model.NewAppError("OAUTH_PROFILE_FAILED", "Failed to get user info from Google", "code", model.ErrUpstream)
	}

	var (
		user  *model.User
		isNew bool
	)
	// 同時に初回ログインした場合は一意制約で片方が失敗するので、一度だけ検索からやり直す
	for attempt := 0; attempt < 2; attempt++ {
		user, isNew, err = s.findOrCreateOAuthUser(ctx, profile)
		if !errors.Is(err, model.ErrConflict) {
			break
		}
		logger.Warn("Conflict while creating OAuth user, retrying lookup", "attempt", attempt)
	}
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errInternal(err)
	}

	logger.Info("OAuth session established", "user_id", user.UserID, "is_new_user", isNew)
	return s.authResponse(ctx, user, &isNew)
}

func (s *authService) findOrCreateOAuthUser(ctx context.Context, profile *model.OAuthProfile) (*model.User, bool, error) {
	var (
		user  *model.User
		isNew bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.userRepo.FindByEmailOrGoogleID(ctx, tx, profile.Email, profile.ID)
		if err == nil {
			if profile.Picture != "" && (existing.Picture == nil || *existing.Picture != profile.Picture) {
				if err := s.userRepo.UpdatePicture(ctx, tx, existing.UserID, profile.Picture); err != nil {
					return err
				}
				picture := profile.Picture
				existing.Picture = &picture
			}
			user = existing
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		googleID := profile.ID
		created := &model.User{
			UserID:            NewPrefixedID("user_"),
			Email:             profile.Email,
			Name:              displayName(profile),
			GoogleID:          &googleID,
			PreferredLanguage: config.DefaultLanguage,
		}
		if profile.Picture != "" {
			picture := profile.Picture
			created.Picture = &picture
		}
		if err := s.userRepo.Create(ctx, tx, created); err != nil {
			return err
		}
		if err := s.progressRepo.Create(ctx, tx, created.UserID); err != nil {
			return err
		}
		user = created
		isNew = true
		return nil
	})
	return user, isNew, err
}

func displayName(p *model.OAuthProfile) string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	local, _, _ := strings.Cut(p.Email, "@")
	return local
}

func (s *authService) authResponse(ctx context.Context, user *model.User, isNew *bool) (*model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.UserID, user.Email)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to issue token", "error", err, "user_id", user.UserID)
		return nil, errInternal(err)
	}
	return &model.AuthResponse{User: user, Token: token, IsNewUser: isNew}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		return nil, errInternal(err)
	}
	return user, nil
}

// UpdateLanguage は空の場合デフォルト言語 (pt) を使い、対応外の言語は 400 にします。
func (s *authService) UpdateLanguage(ctx context.Context, userID, language string) (*model.LanguageResponse, error) {
	if language == "" {
		language = config.DefaultLanguage
	}
	if !slices.Contains(config.SupportedLanguages, language) {
		return nil, model.NewAppError("INVALID_LANGUAGE", "Invalid language", "language", model.ErrInvalidInput)
	}

	if err := s.userRepo.UpdateLanguage(ctx, s.db, userID, language); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		return nil, errInternal(err)
	}
	return &model.LanguageResponse{Message: "Language updated", Language: language}, nil
}
