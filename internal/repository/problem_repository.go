//go:generate mockery --name ProblemRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProblemRepository interface {
	Create(ctx context.Context, db *gorm.DB, problem *model.Problem) error
	FindByID(ctx context.Context, db *gorm.DB, problemID uuid.UUID) (*model.Problem, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, filter model.ProblemFilter) ([]*model.Problem, error)
	Update(ctx context.Context, db *gorm.DB, problem *model.Problem) error
}

type gormProblemRepository struct{}

func NewGormProblemRepository() ProblemRepository {
	return &gormProblemRepository{}
}

func (r *gormProblemRepository) Create(ctx context.Context, db *gorm.DB, problem *model.Problem) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(problem)
	if result.Error != nil {
		logger.Error(
			"Error creating problem in DB",
			"error", result.Error,
			"owner_id", problem.OwnerID.String(),
		)
		return fmt.Errorf("gormProblemRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProblemRepository) FindByID(ctx context.Context, db *gorm.DB, problemID uuid.UUID) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problem model.Problem

	result := db.WithContext(ctx).Where("problem_id = ?", problemID).First(&problem)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding problem by ID in DB",
			"error", result.Error,
			"problem_id", problemID.String(),
		)
		return nil, fmt.Errorf("gormProblemRepository.FindByID: %w", result.Error)
	}
	return &problem, nil
}

func (r *gormProblemRepository) ListByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, filter model.ProblemFilter) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problems []*model.Problem

	query := db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Course != "" {
		query = query.Where("course = ?", filter.Course)
	}
	if filter.BookmarkedOnly {
		query = query.Where("is_bookmarked = ?", true)
	}

	result := query.Order("created_at DESC").Find(&problems)
	if result.Error != nil {
		logger.Error(
			"Error listing problems by owner in DB",
			"error", result.Error,
			"owner_id", ownerID.String(),
		)
		return nil, fmt.Errorf("gormProblemRepository.ListByOwner: %w", result.Error)
	}
	return problems, nil
}

func (r *gormProblemRepository) Update(ctx context.Context, db *gorm.DB, problem *model.Problem) error {
	logger := middleware.GetLogger(ctx)

	// 事前に存在確認済みの前提でオブジェクト全体を保存する
	result := db.WithContext(ctx).Save(problem)
	if result.Error != nil {
		logger.Error(
			"Error updating problem in DB",
			"error", result.Error,
			"problem_id", problem.ProblemID.String(),
		)
		return fmt.Errorf("gormProblemRepository.Update: %w", result.Error)
	}
	return nil
}
