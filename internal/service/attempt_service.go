package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptService は解答イベントを記録します。
// 記録は追記専用で、対象問題の全知識タグの習熟度再計算を同一トランザクションで
// 同期的に行う。再計算に失敗した場合は解答の記録ごとロールバックされ、
// 呼び出しが戻った直後のプロファイル参照で更新後の習熟度が見えることを保証する。
type AttemptService interface {
	RecordAttempt(ctx context.Context, userID, problemID uuid.UUID, isCorrect bool, timeSpentSec int) (*model.Attempt, error)
}

type attemptService struct {
	db          *gorm.DB
	problemRepo repository.ProblemRepository
	attemptRepo repository.AttemptRepository
	mastery     MasteryService
	// 同一 (ユーザー, トピック) への並行記録を記録+再計算+コミットの単位で
	// 直列化し、古い再計算結果による上書き (lost update) を防ぐ
	locks *keyedMutex
}

func NewAttemptService(db *gorm.DB, problemRepo repository.ProblemRepository, attemptRepo repository.AttemptRepository, mastery MasteryService) AttemptService {
	return &attemptService{
		db:          db,
		problemRepo: problemRepo,
		attemptRepo: attemptRepo,
		mastery:     mastery,
		locks:       newKeyedMutex(),
	}
}

func (s *attemptService) RecordAttempt(ctx context.Context, userID, problemID uuid.UUID, isCorrect bool, timeSpentSec int) (*model.Attempt, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "problem_id", problemID)

	if timeSpentSec < 0 {
		return nil, model.NewAppError("INVALID_TIME_SPENT", "解答時間は0以上で指定してください。", "time_spent_sec", model.ErrInvalidInput)
	}

	problem, err := s.problemRepo.FindByID(ctx, s.db, problemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Attempt recording failed: problem not found")
			return nil, model.NewAppError("PROBLEM_NOT_FOUND", "問題が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding problem for attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	attempt := &model.Attempt{
		AttemptID:    uuid.New(),
		UserID:       userID,
		ProblemID:    problemID,
		IsCorrect:    isCorrect,
		TimeSpentSec: timeSpentSec,
		SubmittedAt:  time.Now(),
	}

	// 取得順序を固定するため、ロックキーはソート済みのタグ列から作る
	topics := uniqueSortedTopics(problem.KnowledgeTags)
	for _, topic := range topics {
		key := userID.String() + "|" + topic
		s.locks.Lock(key)
		defer s.locks.Unlock(key)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			logger.Error("Error creating attempt", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "解答の記録に失敗しました。", "", err)
		}

		// 記録した解答を含む履歴で、問題の全知識タグの習熟度を同一
		// トランザクション内で再計算する。失敗時は解答の記録ごとロールバック
		for _, topic := range topics {
			if _, err := s.mastery.Recompute(ctx, tx, userID, topic); err != nil {
				logger.Error("Mastery recomputation failed, rolling back attempt", "error", err, "topic", topic)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Attempt recorded", "attempt_id", attempt.AttemptID, "is_correct", isCorrect, "topics", len(topics))
	return attempt, nil
}

// uniqueSortedTopics はタグ列を重複排除し昇順に並べて返します
func uniqueSortedTopics(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	topics := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		topics = append(topics, tag)
	}
	sort.Strings(topics)
	return topics
}
