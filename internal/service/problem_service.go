package service

import (
	"context"
	"errors"
	"log/slog"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemService は練習問題の登録・参照・メタデータ更新を提供します。
// Content (エンコード済みブロブ) は登録後に変更できない。
type ProblemService interface {
	CreateProblem(ctx context.Context, ownerID uuid.UUID, req *model.CreateProblemRequest) (*model.Problem, error)
	GetProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.Problem, error)
	ListProblems(ctx context.Context, ownerID uuid.UUID, filter model.ProblemFilter) ([]*model.Problem, error)
	UpdateProblem(ctx context.Context, userID, problemID uuid.UUID, req *model.UpdateProblemRequest) (*model.Problem, error)
}

type problemService struct {
	db          *gorm.DB
	problemRepo repository.ProblemRepository
}

func NewProblemService(db *gorm.DB, problemRepo repository.ProblemRepository) ProblemService {
	return &problemService{
		db:          db,
		problemRepo: problemRepo,
	}
}

func (s *problemService) CreateProblem(ctx context.Context, ownerID uuid.UUID, req *model.CreateProblemRequest) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx).With("owner_id", ownerID)

	problem := &model.Problem{
		ProblemID:     uuid.New(),
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		SourceType:    req.SourceType,
		Content:       req.Content,
		Subject:       req.Subject,
		Course:        req.Course,
		ProblemType:   req.ProblemType,
		KnowledgeTags: req.KnowledgeTags,
		Difficulty:    req.Difficulty,
		Tags:          req.Tags,
		Notes:         req.Notes,
	}

	if err := s.problemRepo.Create(ctx, s.db, problem); err != nil {
		logger.Error("Failed to create problem", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題の登録に失敗しました。", "", err)
	}

	logger.Info("Problem created", "problem_id", problem.ProblemID, "source_type", problem.SourceType)
	return problem, nil
}

func (s *problemService) GetProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx).With("problem_id", problemID)

	problem, err := s.findOwnedProblem(ctx, logger, userID, problemID)
	if err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *problemService) ListProblems(ctx context.Context, ownerID uuid.UUID, filter model.ProblemFilter) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx).With("owner_id", ownerID)

	problems, err := s.problemRepo.ListByOwner(ctx, s.db, ownerID, filter)
	if err != nil {
		logger.Error("Failed to list problems", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題一覧の取得に失敗しました。", "", err)
	}
	return problems, nil
}

// UpdateProblem は所有者による問題メタデータの部分更新。
// nilでないフィールドのみ反映し、Content には触れない。
func (s *problemService) UpdateProblem(ctx context.Context, userID, problemID uuid.UUID, req *model.UpdateProblemRequest) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx).With("problem_id", problemID)

	var updated *model.Problem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		problem, err := s.problemRepo.FindByID(ctx, tx, problemID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PROBLEM_NOT_FOUND", "問題が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error finding problem for update", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}
		if problem.OwnerID != userID {
			logger.Warn("Problem update denied: not the owner", "user_id", userID)
			return model.NewAppError("NOT_PROBLEM_OWNER", "この問題を変更する権限がありません。", "", model.ErrForbidden)
		}

		if req.Title != nil {
			problem.Title = *req.Title
		}
		if req.Description != nil {
			problem.Description = *req.Description
		}
		if req.Subject != nil {
			problem.Subject = *req.Subject
		}
		if req.Course != nil {
			problem.Course = *req.Course
		}
		if req.ProblemType != nil {
			problem.ProblemType = *req.ProblemType
		}
		if req.KnowledgeTags != nil {
			problem.KnowledgeTags = *req.KnowledgeTags
		}
		if req.Difficulty != nil {
			problem.Difficulty = *req.Difficulty
		}
		if req.IsBookmarked != nil {
			problem.IsBookmarked = *req.IsBookmarked
		}
		if req.Tags != nil {
			problem.Tags = *req.Tags
		}
		if req.Notes != nil {
			problem.Notes = *req.Notes
		}

		if err := s.problemRepo.Update(ctx, tx, problem); err != nil {
			logger.Error("Error updating problem", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "問題の更新に失敗しました。", "", err)
		}

		updated = problem
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Problem metadata updated", "owner_id", updated.OwnerID)
	return updated, nil
}

func (s *problemService) findOwnedProblem(ctx context.Context, logger *slog.Logger, userID, problemID uuid.UUID) (*model.Problem, error) {
	problem, err := s.problemRepo.FindByID(ctx, s.db, problemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROBLEM_NOT_FOUND", "問題が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding problem by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	if problem.OwnerID != userID {
		logger.Warn("Problem access denied: not the owner", "user_id", userID)
		return nil, model.NewAppError("NOT_PROBLEM_OWNER", "この問題を参照する権限がありません。", "", model.ErrForbidden)
	}
	return problem, nil
}
