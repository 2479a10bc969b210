// internal/model/problem.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// 題材の登録形式
const (
	SourceTypeText  = "text"
	SourceTypeImage = "image"
	SourceTypeLatex = "latex"
)

// Problem は学習用の練習問題を表します。
// Content は登録時にBase64エンコード済みで渡され、作成後は変更不可。
type Problem struct {
	ProblemID     uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"problem_id"`
	OwnerID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title         string                      `gorm:"type:varchar(256);not null" json:"title"`
	Description   string                      `gorm:"type:text" json:"description"`
	SourceType    string                      `gorm:"type:varchar(32);not null;default:text" json:"source_type"`
	Content       string                      `gorm:"type:text" json:"content"` // Base64エンコード済みブロブ
	Subject       string                      `gorm:"type:varchar(64);index" json:"subject"`
	Course        string                      `gorm:"type:varchar(128)" json:"course"`
	ProblemType   string                      `gorm:"type:varchar(64)" json:"problem_type"`
	KnowledgeTags datatypes.JSONSlice[string] `json:"knowledge_tags"`
	Difficulty    int                         `json:"difficulty"`
	IsBookmarked  bool                        `gorm:"not null;default:false" json:"is_bookmarked"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	Notes         string                      `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`

	// 関連 (Preload用)
	Owner *User `gorm:"foreignKey:OwnerID;references:UserID" json:"-"`
}

func (Problem) TableName() string {
	return "problems"
}

// 問題登録リクエストDTO
type CreateProblemRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=256"`
	Description   string   `json:"description" validate:"omitempty"`
	SourceType    string   `json:"source_type" validate:"required,oneof=text image latex"`
	Content       string   `json:"content" validate:"omitempty,base64"`
	Subject       string   `json:"subject" validate:"omitempty,max=64"`
	Course        string   `json:"course" validate:"omitempty,max=128"`
	ProblemType   string   `json:"problem_type" validate:"omitempty,max=64"`
	KnowledgeTags []string `json:"knowledge_tags" validate:"omitempty,dive,min=1"`
	Difficulty    int      `json:"difficulty" validate:"omitempty,min=1,max=5"`
	Tags          []string `json:"tags" validate:"omitempty,dive,min=1"`
	Notes         string   `json:"notes" validate:"omitempty"`
}

// 問題メタデータ更新（部分）リクエストDTO。Content は更新対象外。
type UpdateProblemRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=256"`
	Description   *string   `json:"description,omitempty"`
	Subject       *string   `json:"subject,omitempty" validate:"omitempty,max=64"`
	Course        *string   `json:"course,omitempty" validate:"omitempty,max=128"`
	ProblemType   *string   `json:"problem_type,omitempty" validate:"omitempty,max=64"`
	KnowledgeTags *[]string `json:"knowledge_tags,omitempty" validate:"omitempty,dive,min=1"`
	Difficulty    *int      `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
	IsBookmarked  *bool     `json:"is_bookmarked,omitempty"`
	Tags          *[]string `json:"tags,omitempty" validate:"omitempty,dive,min=1"`
	Notes         *string   `json:"notes,omitempty"`
}

// 問題一覧の絞り込み条件
type ProblemFilter struct {
	Subject        string
	Course         string
	BookmarkedOnly bool
}
