//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"study_helper/internal/middleware"
	"study_helper/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LIKEパターン中のメタ文字をバックスラッシュでエスケープする
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error
	// ListByUserAndTopic は、指定トピックを知識タグに含む問題への
	// ユーザーの解答を時系列 (古い順) で返します。
	ListByUserAndTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID, topic string) ([]*model.Attempt, error)
	StatsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.AttemptStats, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		logger.Error(
			"Error creating attempt in DB",
			"error", result.Error,
			"user_id", attempt.UserID.String(),
			"problem_id", attempt.ProblemID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) ListByUserAndTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID, topic string) ([]*model.Attempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempts []*model.Attempt

	// knowledge_tags はJSON配列のテキスト表現なので、トピックをJSONエンコードした
	// 完全一致要素をLIKEで検索する (例: %"derivatives"%)。トピックは自由入力の
	// 文字列であるため、LIKEメタ文字とJSONエスケープ由来のバックスラッシュを
	// エスケープしてから照合する
	encoded, err := json.Marshal(topic)
	if err != nil {
		return nil, fmt.Errorf("gormAttemptRepository.ListByUserAndTopic: encode topic: %w", err)
	}
	pattern := "%" + escapeLikePattern(string(encoded)) + "%"

	result := db.WithContext(ctx).
		Joins("JOIN problems ON problems.problem_id = attempts.problem_id").
		Where(`attempts.user_id = ? AND CAST(problems.knowledge_tags AS TEXT) LIKE ? ESCAPE '\'`, userID, pattern).
		Order("attempts.submitted_at ASC, attempts.attempt_id ASC").
		Find(&attempts)
	if result.Error != nil {
		logger.Error(
			"Error listing attempts by user and topic in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"topic", topic,
		)
		return nil, fmt.Errorf("gormAttemptRepository.ListByUserAndTopic: %w", result.Error)
	}
	return attempts, nil
}

func (r *gormAttemptRepository) StatsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.AttemptStats, error) {
	logger := middleware.GetLogger(ctx)
	var stats model.AttemptStats

	result := db.WithContext(ctx).
		Model(&model.Attempt{}).
		Select(
			"COUNT(*) AS total",
			"COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS correct",
			"COALESCE(SUM(time_spent_sec), 0) AS total_time_spent_sec",
		).
		Where("user_id = ?", userID).
		Scan(&stats)
	if result.Error != nil {
		logger.Error(
			"Error aggregating attempt stats in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.StatsByUser: %w", result.Error)
	}
	return &stats, nil
}
