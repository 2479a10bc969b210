// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt は1回の解答記録を表します。作成後は変更しない追記専用ログ。
type Attempt struct {
	AttemptID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_attempt_user" json:"user_id"`
	ProblemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"problem_id"`
	IsCorrect    bool      `gorm:"not null" json:"is_correct"`
	TimeSpentSec int       `gorm:"not null;default:0" json:"time_spent_sec"`
	SubmittedAt  time.Time `gorm:"not null;index" json:"submitted_at"`

	// 関連 (Preload用)
	Problem *Problem `gorm:"foreignKey:ProblemID;references:ProblemID" json:"-"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// 解答記録リクエストDTO
type RecordAttemptRequest struct {
	IsCorrect    *bool `json:"is_correct" validate:"required"`
	TimeSpentSec *int  `json:"time_spent_sec" validate:"required,min=0"`
}

// AttemptStats は解答ログから直接集計した統計値
type AttemptStats struct {
	Total             int64
	Correct           int64
	TotalTimeSpentSec int64
}
