package service

import (
	"context"
	"errors"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService はユーザー登録・認証と、トークンから現在有効なユーザーへの
// 解決 (Access Control Gate) を提供します。
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ResolveToken(ctx context.Context, tokenString string) (*model.User, error)
	RequireAdmin(user *model.User) error
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register は新しいユーザーを登録します。
// ユーザー名・メールアドレスの一意性に違反した場合はConflictを返す。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ユーザー名での重複チェック
		_, err := s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already exists", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// Emailでの重複チェック
		_, err = s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := HashPassword(req.Password)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return err
		}

		user := &model.User{
			UserID:       uuid.New(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hashedPassword,
			Nickname:     req.Nickname,
			IsActive:     true,
			IsAdmin:      false,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "指定されたユーザー名またはメールアドレスは既に使用されています。", "username,email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID, "username", newUser.Username)
	return newUser, nil
}

// Login はユーザーを認証し、アクセストークンを返します。
// ユーザー不在・パスワード不一致・アカウント無効のいずれでも同一のエラーを
// 返し、呼び出し元からは区別できないようにする (ユーザー列挙の防止)。
// 内部ログでは原因を区別して記録する。
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	uniformErr := func() error {
		return model.NewAppError("AUTHENTICATION_FAILED", "ユーザー名またはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, uniformErr()
		}
		logger.Error("Login failed: db error on FindByUsername", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, uniformErr()
	}

	if !user.IsActive {
		logger.Warn("Login failed: account not active", "user_id", user.UserID)
		return nil, uniformErr()
	}

	signedToken, err := s.tokens.Issue(user)
	if err != nil {
		logger.Error("Failed to issue access token", "error", err, "user_id", user.UserID)
		return nil, err
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: signedToken, TokenType: "bearer"}, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return user, nil
}

// ResolveToken はトークンを検証し、現在有効なユーザーに解決します。
// トークンのクレームではなくDB上の最新の is_active を確認するため、
// 無効化されたユーザーの既発行トークンは次のリクエストから失効する。
func (s *authService) ResolveToken(ctx context.Context, tokenString string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	userID, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Token resolution failed: user not found", "user_id", userID.String())
			return nil, model.NewAppError("UNAUTHORIZED", "認証に失敗しました。", "", model.ErrUnauthorized)
		}
		logger.Error("Token resolution failed: db error", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if !user.IsActive {
		logger.Warn("Token resolution failed: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("UNAUTHORIZED", "認証に失敗しました。", "", model.ErrUnauthorized)
	}

	return user, nil
}

// RequireAdmin は管理者権限を要求する純粋な述語。I/Oは行わない。
func (s *authService) RequireAdmin(user *model.User) error {
	if user == nil || !user.IsAdmin {
		return model.NewAppError("ADMIN_REQUIRED", "管理者権限が必要です。", "", model.ErrForbidden)
	}
	return nil
}
