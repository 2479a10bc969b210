package service

import (
	"context"
	"errors"
	"math"
	"time"

	"study_helper/internal/config"
	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasteryService は解答履歴から (ユーザー, トピック) ごとの習熟度スコアを
// 再計算・参照します。スコアは履歴の純粋な関数であり、同じ履歴に対する
// 再計算は常に同じ結果になる (冪等)。
type MasteryService interface {
	// Recompute は呼び出し側のトランザクションハンドルで動作する。
	// 同一 (ユーザー, トピック) に対する並行呼び出しの直列化は
	// 呼び出し側 (AttemptService) の責務。
	Recompute(ctx context.Context, db *gorm.DB, userID uuid.UUID, topic string) (*model.TopicMastery, error)
	Get(ctx context.Context, userID uuid.UUID, topic string) (*model.TopicMastery, error)
}

type masteryService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	masteryRepo repository.MasteryRepository
	cfg         *config.Config
}

func NewMasteryService(db *gorm.DB, attemptRepo repository.AttemptRepository, masteryRepo repository.MasteryRepository, cfg *config.Config) MasteryService {
	return &masteryService{
		db:          db,
		attemptRepo: attemptRepo,
		masteryRepo: masteryRepo,
		cfg:         cfg,
	}
}

// Recompute は対象トピックへの全解答履歴から習熟度スコアを再計算して保存します。
// 解答が1件もないトピックに対しては行を作成せず NotFound を返す (遅延作成)。
// 履歴の読み取りと保存は渡されたハンドル上の1トランザクションで行う
// (既にトランザクション内ならセーブポイントになる)。
func (s *masteryService) Recompute(ctx context.Context, db *gorm.DB, userID uuid.UUID, topic string) (*model.TopicMastery, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic", topic)

	var result *model.TopicMastery
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempts, err := s.attemptRepo.ListByUserAndTopic(ctx, tx, userID, topic)
		if err != nil {
			logger.Error("Failed to list attempts for recompute", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の再計算に失敗しました。", "", err)
		}
		if len(attempts) == 0 {
			return model.NewAppError("MASTERY_NOT_FOUND", "このトピックの解答履歴がありません。", "", model.ErrNotFound)
		}

		score := computeMasteryScore(attempts, s.cfg.App.MasteryDecay)

		mastery, err := s.masteryRepo.FindByUserAndTopic(ctx, tx, userID, topic)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding topic mastery in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の確認中にエラーが発生しました。", "", err)
		}

		if errors.Is(err, model.ErrNotFound) {
			// --- 新規作成 (最初の解答時の遅延作成) ---
			mastery = &model.TopicMastery{
				MasteryID: uuid.New(),
				UserID:    userID,
				Topic:     topic,
				Score:     score,
				UpdatedAt: time.Now(),
			}
			if createErr := s.masteryRepo.Create(ctx, tx, mastery); createErr != nil {
				logger.Error("Error creating topic mastery", "error", createErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の作成に失敗しました。", "", createErr)
			}
		} else {
			// --- 更新 ---
			mastery.Score = score
			mastery.UpdatedAt = time.Now()
			if updateErr := s.masteryRepo.Update(ctx, tx, mastery); updateErr != nil {
				logger.Error("Error updating topic mastery", "error", updateErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の更新に失敗しました。", "", updateErr)
			}
		}

		result = mastery
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Topic mastery recomputed", "score", result.Score)
	return result, nil
}

// Get は習熟度の読み取り専用参照。再計算は行わない。
func (s *masteryService) Get(ctx context.Context, userID uuid.UUID, topic string) (*model.TopicMastery, error) {
	mastery, err := s.masteryRepo.FindByUserAndTopic(ctx, s.db, userID, topic)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MASTERY_NOT_FOUND", "このトピックの習熟度はまだ記録されていません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習熟度の取得に失敗しました。", "", err)
	}
	return mastery, nil
}

// computeMasteryScore は時系列順の解答履歴から 0〜100 のスコアを計算します。
// 直近の解答ほど重みが大きい指数減衰の加重平均:
//
//	score = 100 * Σ(w_i * correct_i) / Σ(w_i),  w_i = decay^(n-1-i)
//
// decay は (0, 1] の調整パラメータで、小さいほど直近の結果に敏感になる。
// decay = 1 のとき単純な正答率と一致する。
func computeMasteryScore(attempts []*model.Attempt, decay float64) float64 {
	if len(attempts) == 0 {
		return 0
	}
	if decay <= 0 || decay > 1 {
		decay = config.DefaultMasteryDecay
	}

	n := len(attempts)
	var weightedCorrect, weightTotal float64
	for i, attempt := range attempts {
		w := math.Pow(decay, float64(n-1-i))
		weightTotal += w
		if attempt.IsCorrect {
			weightedCorrect += w
		}
	}

	score := 100 * weightedCorrect / weightTotal
	// 丸め誤差対策のクランプ
	return math.Min(100, math.Max(0, score))
}
