package model

import (
	"time"

	"github.com/google/uuid"
)

// User はユーザーアカウントを表します。
// 物理削除は行わず、is_active = false による無効化のみ (ソフト無効化)。
type User struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username     string    `gorm:"type:varchar(128);unique;not null;index" json:"username"`
	Email        string    `gorm:"type:varchar(256);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(256);not null" json:"-"`
	Nickname     string    `gorm:"type:varchar(128)" json:"nickname"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserKey ContextKey = "currentUser"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Nickname string `json:"nickname" validate:"omitempty,max=128"`
}

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse は User から公開用DTOを組み立てます
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Nickname:  u.Nickname,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
