// internal/model/mastery.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TopicMastery は (ユーザー, トピック) ごとの習熟度サマリを表します。
// スコアは 0〜100。解答履歴から再計算可能な派生データであり、
// 最初の解答時に遅延作成され、以後の解答のたびに更新されます。
type TopicMastery struct {
	MasteryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"mastery_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_topic,unique" json:"user_id"`
	Topic     string    `gorm:"type:varchar(128);not null;index:idx_user_topic,unique" json:"topic"`
	Score     float64   `gorm:"not null;default:0" json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TopicMastery) TableName() string {
	return "topic_mastery"
}
