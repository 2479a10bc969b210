package service

import (
	"context"
	"errors"
	"testing"
	"time"

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

func setupTestDBMastery(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TopicMastery{}))
	return db
}

func newTestMasteryConfig(decay float64) *config.Config {
	return &config.Config{
		App: config.AppConfig{MasteryDecay: decay},
	}
}

// 解答履歴を生成するヘルパー。resultsは古い順。
func makeAttempts(userID uuid.UUID, results ...bool) []*model.Attempt {
	attempts := make([]*model.Attempt, 0, len(results))
	base := time.Now().Add(-time.Hour)
	for i, isCorrect := range results {
		attempts = append(attempts, &model.Attempt{
			AttemptID:   uuid.New(),
			UserID:      userID,
			ProblemID:   uuid.New(),
			IsCorrect:   isCorrect,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return attempts
}

// --- Test computeMasteryScore ---
func Test_computeMasteryScore(t *testing.T) {
	userID := uuid.New()

	t.Run("全問正解で100", func(t *testing.T) {
		score := computeMasteryScore(makeAttempts(userID, true, true, true), 0.9)
		assert.InDelta(t, 100, score, 1e-9)
	})

	t.Run("全問不正解で0", func(t *testing.T) {
		score := computeMasteryScore(makeAttempts(userID, false, false, false), 0.9)
		assert.InDelta(t, 0, score, 1e-9)
	})

	t.Run("decay=1のとき単純な正答率と一致", func(t *testing.T) {
		score := computeMasteryScore(makeAttempts(userID, true, false, true, false), 1.0)
		assert.InDelta(t, 50, score, 1e-9)
	})

	t.Run("直近の解答ほど重みが大きい", func(t *testing.T) {
		// 同じ正答数でも、直近が正解のほうがスコアは高い
		recentCorrect := computeMasteryScore(makeAttempts(userID, false, true), 0.9)
		recentWrong := computeMasteryScore(makeAttempts(userID, true, false), 0.9)
		assert.Greater(t, recentCorrect, recentWrong)
	})

	t.Run("直近の不正解でスコアが下がる", func(t *testing.T) {
		before := computeMasteryScore(makeAttempts(userID, true), 0.9)
		after := computeMasteryScore(makeAttempts(userID, true, false), 0.9)
		assert.Less(t, after, before)
	})

	t.Run("同じ履歴に対して常に同じスコア (冪等)", func(t *testing.T) {
		attempts := makeAttempts(userID, true, false, true, true, false)
		first := computeMasteryScore(attempts, 0.9)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, computeMasteryScore(attempts, 0.9))
		}
	})

	t.Run("スコアは常に0〜100の範囲", func(t *testing.T) {
		patterns := [][]bool{
			{true},
			{false},
			{true, false, false, true, true, false, true},
		}
		for _, p := range patterns {
			score := computeMasteryScore(makeAttempts(userID, p...), 0.5)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	})

	t.Run("履歴が空なら0", func(t *testing.T) {
		assert.Equal(t, 0.0, computeMasteryScore(nil, 0.9))
	})

	t.Run("具体例: decay=0.9で正解1回→不正解1回", func(t *testing.T) {
		// w = [0.9, 1.0], 正解は古い方のみ: 100 * 0.9 / 1.9
		score := computeMasteryScore(makeAttempts(userID, true, false), 0.9)
		assert.InDelta(t, 100*0.9/1.9, score, 1e-9)
	})
}

// --- Test Recompute ---
func Test_masteryService_Recompute(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBMastery(t)
	mockAttemptRepo := new(mocks.AttemptRepository)
	mockMasteryRepo := new(mocks.MasteryRepository)
	masteryService := NewMasteryService(db, mockAttemptRepo, mockMasteryRepo, newTestMasteryConfig(0.9))

	userID := uuid.New()
	topic := "derivatives"

	tests := []struct {
		name      string
		setupMock func(ma *mocks.AttemptRepository, mm *mocks.MasteryRepository)
		wantErr   error
		wantScore float64
	}{
		{
			name: "正常系: 初回解答で習熟度を新規作成 (遅延作成)",
			setupMock: func(ma *mocks.AttemptRepository, mm *mocks.MasteryRepository) {
				ma.On("ListByUserAndTopic", ctx, mock.AnythingOfType("*gorm.DB"), userID, topic).
					Return(makeAttempts(userID, true), nil).Once()
				mm.On("FindByUserAndTopic", ctx, mock.AnythingOfType("*gorm.DB"), userID, topic).
					Return(nil, model.ErrNotFound).Once()
				mm.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(m *model.TopicMastery) bool {
					return m.UserID == userID && m.Topic == topic && m.Score == 100
				})).Return(nil).Once()
			},
			wantErr:   nil,
			wantScore: 100,
		},
		{
			name: "正常系: 既存の習熟度を更新",
			setupMock: func(ma *mocks.AttemptRepository, mm *mocks.MasteryRepository) {
				ma.On("ListByUserAndTopic", ctx, mock.AnythingOfType("*gorm.DB"), userID, topic).
					Return(makeAttempts(userID, true, false), nil).Once()
				existing := &model.TopicMastery{
					MasteryID: uuid.New(), UserID: userID, Topic: topic, Score: 100,
				}
				mm.On("FindByUserAndTopic", ctx, mock.AnythingOfType("*gorm.DB"), userID, topic).
					Return(existing, nil).Once()
				mm.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(m *model.TopicMastery) bool {
					return m.MasteryID == existing.MasteryID && m.Score < 100
				})).Return(nil).Once()
			},
			wantErr:   nil,
			wantScore: 100 * 0.9 / 1.9,
		},
		{
			name: "異常系: 解答履歴のないトピックは作成されずNotFound",
			setupMock: func(ma *mocks.AttemptRepository, mm *mocks.MasteryRepository) {
				ma.On("ListByUserAndTopic", ctx, mock.AnythingOfType("*gorm.DB"), userID, topic).
					Return([]*model.Attempt{}, nil).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 履歴取得でDBエラー",
			setupMock: func(ma *mocks.AttemptRepository, mm *mocks.MasteryRepository) {
				ma.On("ListByUserAndTopic", ctx, mock.AnythingOfType("*gorm.DB"), userID, topic).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAttemptRepo.Mock = mock.Mock{} // モックをリセット
			mockMasteryRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockAttemptRepo, mockMasteryRepo)
			}

			mastery, err := masteryService.Recompute(ctx, db, userID, topic)

			if tt.wantErr != nil {
				require.Error(t, err)
				if !errors.Is(err, tt.wantErr) {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
				}
				assert.Nil(t, mastery)
			} else {
				require.NoError(t, err)
				require.NotNil(t, mastery)
				assert.InDelta(t, tt.wantScore, mastery.Score, 1e-9)
			}
			mockAttemptRepo.AssertExpectations(t)
			mockMasteryRepo.AssertExpectations(t)
		})
	}
}

// --- Test Get ---
func Test_masteryService_Get(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBMastery(t)
	mockAttemptRepo := new(mocks.AttemptRepository)
	mockMasteryRepo := new(mocks.MasteryRepository)
	masteryService := NewMasteryService(db, mockAttemptRepo, mockMasteryRepo, newTestMasteryConfig(0.9))

	userID := uuid.New()

	t.Run("正常系: 既存の習熟度を取得", func(t *testing.T) {
		mockMasteryRepo.Mock = mock.Mock{}
		existing := &model.TopicMastery{MasteryID: uuid.New(), UserID: userID, Topic: "algebra", Score: 75}
		mockMasteryRepo.On("FindByUserAndTopic", ctx, db, userID, "algebra").Return(existing, nil).Once()

		mastery, err := masteryService.Get(ctx, userID, "algebra")
		require.NoError(t, err)
		assert.Equal(t, 75.0, mastery.Score)
		mockMasteryRepo.AssertExpectations(t)
	})

	t.Run("異常系: 未記録のトピック", func(t *testing.T) {
		mockMasteryRepo.Mock = mock.Mock{}
		mockMasteryRepo.On("FindByUserAndTopic", ctx, db, userID, "unknown").Return(nil, model.ErrNotFound).Once()

		mastery, err := masteryService.Get(ctx, userID, "unknown")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, mastery)
		mockMasteryRepo.AssertExpectations(t)
	})
}
