package service

import (
	"context"
	"testing"

	"study_helper/internal/model"
	"study_helper/internal/repository"
	repo_mocks "study_helper/internal/repository/mocks"
	svc_mocks "study_helper/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAttempt(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Problem{}, &model.Attempt{}, &model.TopicMastery{}))
	return db
}

// --- Test RecordAttempt (モック使用) ---
func Test_attemptService_RecordAttempt(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAttempt(t)
	mockProblemRepo := new(repo_mocks.ProblemRepository)
	mockAttemptRepo := new(repo_mocks.AttemptRepository)
	mockMastery := new(svc_mocks.MasteryService)
	attemptService := NewAttemptService(db, mockProblemRepo, mockAttemptRepo, mockMastery)

	userID := uuid.New()
	problemID := uuid.New()
	problem := &model.Problem{
		ProblemID:     problemID,
		OwnerID:       userID,
		Title:         "微分の基礎",
		SourceType:    model.SourceTypeText,
		KnowledgeTags: datatypes.JSONSlice[string]{"derivatives", "limits"},
	}

	tests := []struct {
		name         string
		problemID    uuid.UUID
		isCorrect    bool
		timeSpentSec int
		setupMock    func()
		wantErr      error
	}{
		{
			name:         "正常系: 解答を記録し全知識タグの習熟度を再計算",
			problemID:    problemID,
			isCorrect:    true,
			timeSpentSec: 30,
			setupMock: func() {
				mockProblemRepo.On("FindByID", ctx, db, problemID).Return(problem, nil).Once()
				mockAttemptRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(a *model.Attempt) bool {
					return a.UserID == userID && a.ProblemID == problemID && a.IsCorrect && a.TimeSpentSec == 30
				})).Return(nil).Once()
				// タグごとに1回ずつ、同期的に再計算される
				mockMastery.On("Recompute", ctx, mock.AnythingOfType("*gorm.DB"), userID, "derivatives").
					Return(&model.TopicMastery{UserID: userID, Topic: "derivatives", Score: 100}, nil).Once()
				mockMastery.On("Recompute", ctx, mock.AnythingOfType("*gorm.DB"), userID, "limits").
					Return(&model.TopicMastery{UserID: userID, Topic: "limits", Score: 100}, nil).Once()
			},
			wantErr: nil,
		},
		{
			name:         "正常系: 知識タグのない問題では再計算は行われない",
			problemID:    problemID,
			isCorrect:    false,
			timeSpentSec: 10,
			setupMock: func() {
				untagged := &model.Problem{ProblemID: problemID, OwnerID: userID, SourceType: model.SourceTypeText}
				mockProblemRepo.On("FindByID", ctx, db, problemID).Return(untagged, nil).Once()
				mockAttemptRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Attempt")).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:         "異常系: 存在しない問題",
			problemID:    uuid.New(),
			isCorrect:    true,
			timeSpentSec: 30,
			setupMock: func() {
				mockProblemRepo.On("FindByID", ctx, db, mock.AnythingOfType("uuid.UUID")).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:         "異常系: 負の解答時間",
			problemID:    problemID,
			isCorrect:    true,
			timeSpentSec: -1,
			setupMock:    func() {},
			wantErr:      model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProblemRepo.Mock = mock.Mock{} // モックをリセット
			mockAttemptRepo.Mock = mock.Mock{}
			mockMastery.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			attempt, err := attemptService.RecordAttempt(ctx, userID, tt.problemID, tt.isCorrect, tt.timeSpentSec)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, attempt)
			} else {
				require.NoError(t, err)
				require.NotNil(t, attempt)
				assert.Equal(t, tt.isCorrect, attempt.IsCorrect)
				assert.Equal(t, tt.timeSpentSec, attempt.TimeSpentSec)
				assert.False(t, attempt.SubmittedAt.IsZero())
			}
			mockProblemRepo.AssertExpectations(t)
			mockAttemptRepo.AssertExpectations(t)
			mockMastery.AssertExpectations(t)
		})
	}
}

// 習熟度の再計算に失敗した場合、解答の記録ごとロールバックされること
// (リトライしても解答が二重記録されない)
func Test_attemptService_RecordAttempt_RollbackOnRecomputeFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAttempt(t)
	mockProblemRepo := new(repo_mocks.ProblemRepository)
	mockMastery := new(svc_mocks.MasteryService)
	// 解答の永続化は本物のリポジトリで行い、ロールバックを検証する
	attemptService := NewAttemptService(db, mockProblemRepo, repository.NewGormAttemptRepository(), mockMastery)

	userID := uuid.New()
	problem := &model.Problem{
		ProblemID:     uuid.New(),
		OwnerID:       userID,
		Title:         "微分の基礎",
		SourceType:    model.SourceTypeText,
		KnowledgeTags: datatypes.JSONSlice[string]{"derivatives"},
	}

	mockProblemRepo.On("FindByID", ctx, db, problem.ProblemID).Return(problem, nil).Once()
	mockMastery.On("Recompute", ctx, mock.AnythingOfType("*gorm.DB"), userID, "derivatives").
		Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の再計算に失敗しました。", "", model.ErrInternalServer)).Once()

	attempt, err := attemptService.RecordAttempt(ctx, userID, problem.ProblemID, true, 30)
	require.Error(t, err)
	assert.Nil(t, attempt)

	var count int64
	require.NoError(t, db.Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Zero(t, count, "failed recompute must not leave the attempt persisted")

	mockProblemRepo.AssertExpectations(t)
	mockMastery.AssertExpectations(t)
}

// --- 結合テスト: 解答記録から習熟度・プロファイルまでのパイプライン ---
func Test_attemptPipeline_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAttempt(t)

	problemRepo := repository.NewGormProblemRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	masteryRepo := repository.NewGormMasteryRepository()

	cfg := newTestMasteryConfig(0.9)
	masteryService := NewMasteryService(db, attemptRepo, masteryRepo, cfg)
	attemptService := NewAttemptService(db, problemRepo, attemptRepo, masteryService)
	profileService := NewProfileService(db, attemptRepo, masteryRepo)

	userID := uuid.New()
	problem := &model.Problem{
		ProblemID:     uuid.New(),
		OwnerID:       userID,
		Title:         "導関数を求めよ",
		SourceType:    model.SourceTypeText,
		Content:       "ZGVyaXZhdGl2ZSBwcm9ibGVt",
		KnowledgeTags: datatypes.JSONSlice[string]{"derivatives"},
	}
	require.NoError(t, db.Create(problem).Error)

	// 1回目: 正解 (30秒) -> 習熟度100
	_, err := attemptService.RecordAttempt(ctx, userID, problem.ProblemID, true, 30)
	require.NoError(t, err)

	mastery, err := masteryService.Get(ctx, userID, "derivatives")
	require.NoError(t, err)
	assert.InDelta(t, 100, mastery.Score, 1e-9)
	scoreAfterCorrect := mastery.Score

	// 2回目: 不正解 (60秒) -> スコアは下がる
	_, err = attemptService.RecordAttempt(ctx, userID, problem.ProblemID, false, 60)
	require.NoError(t, err)

	mastery, err = masteryService.Get(ctx, userID, "derivatives")
	require.NoError(t, err)
	assert.Less(t, mastery.Score, scoreAfterCorrect)
	// w = [0.9, 1.0], 正解は1回目のみ
	assert.InDelta(t, 100*0.9/1.9, mastery.Score, 1e-9)

	// プロファイルに集計値と習熟度が反映される
	profile, err := profileService.BuildProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.TotalAttempts)
	assert.Equal(t, int64(1), profile.CorrectAttempts)
	assert.InDelta(t, 0.5, profile.Accuracy, 1e-9)
	assert.Equal(t, int64(90), profile.TotalTimeSpentSec)
	require.Len(t, profile.Mastery, 1)
	assert.Equal(t, "derivatives", profile.Mastery[0].Topic)
	assert.InDelta(t, mastery.Score, profile.Mastery[0].Score, 1e-9)
}
