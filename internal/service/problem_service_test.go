package service

import (
	"context"
	"testing"

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

func setupTestDBProblem(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Problem{}))
	return db
}

func Test_problemService_CreateProblem(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProblem(t)
	mockProblemRepo := new(mocks.ProblemRepository)
	problemService := NewProblemService(db, mockProblemRepo)

	ownerID := uuid.New()
	req := &model.CreateProblemRequest{
		Title:         "二次方程式",
		SourceType:    model.SourceTypeText,
		Content:       "eF4yICsgMnggKyAxID0gMA",
		Subject:       "math",
		KnowledgeTags: []string{"quadratics"},
	}

	t.Run("正常系: 問題の登録成功", func(t *testing.T) {
		mockProblemRepo.Mock = mock.Mock{}
		mockProblemRepo.On("Create", ctx, db, mock.MatchedBy(func(p *model.Problem) bool {
			return p.OwnerID == ownerID && p.Title == "二次方程式" && p.Content == req.Content
		})).Return(nil).Once()

		problem, err := problemService.CreateProblem(ctx, ownerID, req)
		require.NoError(t, err)
		require.NotNil(t, problem)
		assert.NotEqual(t, uuid.Nil, problem.ProblemID)
		assert.Equal(t, ownerID, problem.OwnerID)
		mockProblemRepo.AssertExpectations(t)
	})
}

func Test_problemService_GetProblem(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProblem(t)
	mockProblemRepo := new(mocks.ProblemRepository)
	problemService := NewProblemService(db, mockProblemRepo)

	ownerID := uuid.New()
	otherUserID := uuid.New()
	problem := &model.Problem{ProblemID: uuid.New(), OwnerID: ownerID, Title: "所有者の問題"}

	tests := []struct {
		name      string
		userID    uuid.UUID
		setupMock func(m *mocks.ProblemRepository)
		wantErr   error
	}{
		{
			name:   "正常系: 所有者は参照できる",
			userID: ownerID,
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("FindByID", ctx, db, problem.ProblemID).Return(problem, nil).Once()
			},
			wantErr: nil,
		},
		{
			name:   "異常系: 所有者以外はForbidden",
			userID: otherUserID,
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("FindByID", ctx, db, problem.ProblemID).Return(problem, nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
		{
			name:   "異常系: 存在しない問題",
			userID: ownerID,
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("FindByID", ctx, db, problem.ProblemID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProblemRepo.Mock = mock.Mock{} // モックをリセット
			if tt.setupMock != nil {
				tt.setupMock(mockProblemRepo)
			}

			got, err := problemService.GetProblem(ctx, tt.userID, problem.ProblemID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, problem.ProblemID, got.ProblemID)
			}
			mockProblemRepo.AssertExpectations(t)
		})
	}
}

func Test_problemService_UpdateProblem(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProblem(t)
	mockProblemRepo := new(mocks.ProblemRepository)
	problemService := NewProblemService(db, mockProblemRepo)

	ownerID := uuid.New()
	otherUserID := uuid.New()
	newTitle := "改題"
	newBookmarked := true

	makeProblem := func() *model.Problem {
		return &model.Problem{
			ProblemID:  uuid.New(),
			OwnerID:    ownerID,
			Title:      "元のタイトル",
			Content:    "b3JpZ2luYWwgY29udGVudA",
			Subject:    "math",
			Difficulty: 3,
		}
	}

	tests := []struct {
		name      string
		userID    uuid.UUID
		req       *model.UpdateProblemRequest
		setupMock func(m *mocks.ProblemRepository, problem *model.Problem)
		check     func(t *testing.T, updated *model.Problem)
		wantErr   error
	}{
		{
			name:   "正常系: 指定したフィールドのみ更新される",
			userID: ownerID,
			req:    &model.UpdateProblemRequest{Title: &newTitle, IsBookmarked: &newBookmarked},
			setupMock: func(m *mocks.ProblemRepository, problem *model.Problem) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), problem.ProblemID).
					Return(problem, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(p *model.Problem) bool {
					return p.Title == "改題" && p.IsBookmarked
				})).Return(nil).Once()
			},
			check: func(t *testing.T, updated *model.Problem) {
				assert.Equal(t, "改題", updated.Title)
				assert.True(t, updated.IsBookmarked)
				// 未指定のフィールドは変わらない
				assert.Equal(t, "math", updated.Subject)
				assert.Equal(t, 3, updated.Difficulty)
				// Content は部分更新の対象外
				assert.Equal(t, "b3JpZ2luYWwgY29udGVudA", updated.Content)
			},
			wantErr: nil,
		},
		{
			name:   "異常系: 所有者以外は更新できない",
			userID: otherUserID,
			req:    &model.UpdateProblemRequest{Title: &newTitle},
			setupMock: func(m *mocks.ProblemRepository, problem *model.Problem) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), problem.ProblemID).
					Return(problem, nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
		{
			name:   "異常系: 存在しない問題",
			userID: ownerID,
			req:    &model.UpdateProblemRequest{Title: &newTitle},
			setupMock: func(m *mocks.ProblemRepository, problem *model.Problem) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), problem.ProblemID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProblemRepo.Mock = mock.Mock{} // モックをリセット
			problem := makeProblem()
			if tt.setupMock != nil {
				tt.setupMock(mockProblemRepo, problem)
			}

			updated, err := problemService.UpdateProblem(ctx, tt.userID, problem.ProblemID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				require.NotNil(t, updated)
				if tt.check != nil {
					tt.check(t, updated)
				}
			}
			mockProblemRepo.AssertExpectations(t)
		})
	}
}
