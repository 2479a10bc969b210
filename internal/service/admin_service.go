package service

import (
	"context"
	"errors"

	"study_helper/internal/config"
	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService は管理者向けのユーザー操作を提供します。
// 権限チェック (RequireAdmin) はAccess Control Gate側で済ませている前提の
// 薄い永続化操作。ユーザーの物理削除は行わず、is_active による無効化のみ。
type AdminService interface {
	ListUsers(ctx context.Context, offset, limit int) ([]*model.User, error)
	BanUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type adminService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAdminService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AdminService {
	return &adminService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *adminService) ListUsers(ctx context.Context, offset, limit int) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > s.cfg.App.UserListLimit {
		limit = s.cfg.App.UserListLimit
	}

	users, err := s.userRepo.List(ctx, s.db, offset, limit)
	if err != nil {
		logger.Error("Failed to list users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー一覧の取得に失敗しました。", "", err)
	}
	return users, nil
}

// BanUser は指定ユーザーを無効化します。無効化されたユーザーは
// ログインできず、既発行トークンも次のリクエストから拒否される。
func (s *adminService) BanUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("target_user_id", userID)

	err := s.userRepo.UpdateActive(ctx, s.db, userID, false)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Ban failed: user not found")
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to ban user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの無効化に失敗しました。", "", err)
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to reload banned user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	logger.Info("User banned")
	return user, nil
}
