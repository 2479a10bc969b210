// internal/model/profile.go
package model

import (
	"github.com/google/uuid"
)

// TopicScore は学習プロファイル内の1トピック分の習熟度
type TopicScore struct {
	Topic string  `json:"topic"`
	Score float64 `json:"score"`
}

// LearningProfile はユーザーの学習プロファイルのレスポンスDTO。
// Mastery は TopicMastery 由来、集計値は解答ログから直接計算する。
type LearningProfile struct {
	UserID            uuid.UUID    `json:"user_id"`
	Mastery           []TopicScore `json:"mastery"`
	TotalAttempts     int64        `json:"total_attempts"`
	CorrectAttempts   int64        `json:"correct_attempts"`
	Accuracy          float64      `json:"accuracy"`
	TotalTimeSpentSec int64        `json:"total_time_spent_sec"`
}
