package service

import (
	"context"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService はトピックごとの習熟度と解答ログの集計値を合成した
// 学習プロファイルを構築します。集計値は TopicMastery ではなく解答ログから
// 直接計算するため、減衰・丸めの影響を受けない。
type ProfileService interface {
	BuildProfile(ctx context.Context, userID uuid.UUID) (*model.LearningProfile, error)
}

type profileService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	masteryRepo repository.MasteryRepository
}

func NewProfileService(db *gorm.DB, attemptRepo repository.AttemptRepository, masteryRepo repository.MasteryRepository) ProfileService {
	return &profileService{
		db:          db,
		attemptRepo: attemptRepo,
		masteryRepo: masteryRepo,
	}
}

// BuildProfile はユーザーの学習プロファイルを返します。
// 解答履歴のないユーザーには空のプロファイルを返す (エラーにはしない)。
func (s *profileService) BuildProfile(ctx context.Context, userID uuid.UUID) (*model.LearningProfile, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	masteries, err := s.masteryRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list topic mastery for profile", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習プロファイルの取得に失敗しました。", "", err)
	}

	stats, err := s.attemptRepo.StatsByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to aggregate attempt stats for profile", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習プロファイルの取得に失敗しました。", "", err)
	}

	topicScores := make([]model.TopicScore, 0, len(masteries))
	for _, m := range masteries {
		topicScores = append(topicScores, model.TopicScore{
			Topic: m.Topic,
			Score: m.Score,
		})
	}

	profile := &model.LearningProfile{
		UserID:            userID,
		Mastery:           topicScores,
		TotalAttempts:     stats.Total,
		CorrectAttempts:   stats.Correct,
		TotalTimeSpentSec: stats.TotalTimeSpentSec,
	}
	if stats.Total > 0 {
		profile.Accuracy = float64(stats.Correct) / float64(stats.Total)
	}

	logger.Debug("Learning profile built", "topics", len(topicScores), "total_attempts", stats.Total)
	return profile, nil
}
