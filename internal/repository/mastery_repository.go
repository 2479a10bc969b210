//go:generate mockery --name MasteryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"study_helper/internal/middleware"
	"study_helper/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MasteryRepository interface {
	FindByUserAndTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID, topic string) (*model.TopicMastery, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.TopicMastery, error)
	Create(ctx context.Context, tx *gorm.DB, mastery *model.TopicMastery) error
	Update(ctx context.Context, tx *gorm.DB, mastery *model.TopicMastery) error
}

type gormMasteryRepository struct{}

func NewGormMasteryRepository() MasteryRepository {
	return &gormMasteryRepository{}
}

func (r *gormMasteryRepository) FindByUserAndTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID, topic string) (*model.TopicMastery, error) {
	logger := middleware.GetLogger(ctx)
	var mastery model.TopicMastery

	result := db.WithContext(ctx).Where("user_id = ? AND topic = ?", userID, topic).First(&mastery)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding topic mastery in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"topic", topic,
		)
		return nil, fmt.Errorf("gormMasteryRepository.FindByUserAndTopic: %w", result.Error)
	}
	return &mastery, nil
}

func (r *gormMasteryRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.TopicMastery, error) {
	logger := middleware.GetLogger(ctx)
	var masteries []*model.TopicMastery

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("topic ASC").
		Find(&masteries)
	if result.Error != nil {
		logger.Error(
			"Error listing topic mastery by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormMasteryRepository.ListByUser: %w", result.Error)
	}
	return masteries, nil
}

func (r *gormMasteryRepository) Create(ctx context.Context, tx *gorm.DB, mastery *model.TopicMastery) error {
	// UUIDはService層で設定済み想定
	result := tx.WithContext(ctx).Create(mastery)
	return result.Error
}

func (r *gormMasteryRepository) Update(ctx context.Context, tx *gorm.DB, mastery *model.TopicMastery) error {
	result := tx.WithContext(ctx).Save(mastery)
	return result.Error
}
