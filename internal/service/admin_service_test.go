package service

import (
	"context"
	"testing"

	"study_helper/internal/config"
	"study_helper/internal/model"
	"study_helper/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAdmin(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newTestAdminConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{UserListLimit: 100},
	}
}

func Test_adminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAdmin(t)
	mockUserRepo := new(mocks.UserRepository)
	adminService := NewAdminService(db, mockUserRepo, newTestAdminConfig())

	users := []*model.User{
		{UserID: uuid.New(), Username: "alice"},
		{UserID: uuid.New(), Username: "bob"},
	}

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "正常系: 指定した範囲で取得",
			offset:     10,
			limit:      20,
			wantOffset: 10,
			wantLimit:  20,
		},
		{
			name:       "正常系: limit未指定は上限値にクランプ",
			offset:     0,
			limit:      0,
			wantOffset: 0,
			wantLimit:  100,
		},
		{
			name:       "正常系: 上限を超えるlimitはクランプ",
			offset:     0,
			limit:      10000,
			wantOffset: 0,
			wantLimit:  100,
		},
		{
			name:       "正常系: 負のoffsetは0に丸める",
			offset:     -5,
			limit:      10,
			wantOffset: 0,
			wantLimit:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo.Mock = mock.Mock{} // モックをリセット
			mockUserRepo.On("List", ctx, db, tt.wantOffset, tt.wantLimit).Return(users, nil).Once()

			got, err := adminService.ListUsers(ctx, tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 2)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func Test_adminService_BanUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAdmin(t)
	mockUserRepo := new(mocks.UserRepository)
	adminService := NewAdminService(db, mockUserRepo, newTestAdminConfig())

	userID := uuid.New()
	bannedUser := &model.User{UserID: userID, Username: "alice", IsActive: false}

	t.Run("正常系: ユーザーの無効化成功", func(t *testing.T) {
		mockUserRepo.Mock = mock.Mock{}
		mockUserRepo.On("UpdateActive", ctx, db, userID, false).Return(nil).Once()
		mockUserRepo.On("FindByID", ctx, db, userID).Return(bannedUser, nil).Once()

		user, err := adminService.BanUser(ctx, userID)
		require.NoError(t, err)
		assert.False(t, user.IsActive)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		mockUserRepo.Mock = mock.Mock{}
		mockUserRepo.On("UpdateActive", ctx, db, userID, false).Return(model.ErrNotFound).Once()

		user, err := adminService.BanUser(ctx, userID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, user)
		mockUserRepo.AssertExpectations(t)
	})
}
