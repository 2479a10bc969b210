package handlers

import (
	"errors"
	"net/http"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/service"
	"study_helper/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProblemHandler struct {
	service service.ProblemService
}

func NewProblemHandler(s service.ProblemService) *ProblemHandler {
	return &ProblemHandler{service: s}
}

// CreateProblem は新しい問題を登録します
func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateProblemRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for problem creation", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for problem creation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	problem, err := h.service.CreateProblem(r.Context(), user.UserID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, problem)
}

// GetProblem は問題を 1 件取得します
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	problemID, err := parseUUIDParam(r, "problem_id")
	if err != nil {
		logger.Warn("Invalid problem_id in path", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	problem, err := h.service.GetProblem(r.Context(), user.UserID, problemID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, problem)
}

// ListProblems は自分が所有する問題を一覧します
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	query := r.URL.Query()
	filter := model.ProblemFilter{
		Subject:        query.Get("subject"),
		Course:         query.Get("course"),
		BookmarkedOnly: query.Get("bookmarked") == "true",
	}

	problems, err := h.service.ListProblems(r.Context(), user.UserID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, problems)
}

// UpdateProblem は問題のメタデータを部分更新します
func (h *ProblemHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	problemID, err := parseUUIDParam(r, "problem_id")
	if err != nil {
		logger.Warn("Invalid problem_id in path", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProblemRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for problem update", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for problem update", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	problem, err := h.service.UpdateProblem(r.Context(), user.UserID, problemID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, problem)
}

// parseUUIDParam はパスパラメータを UUID として解釈します
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID_FORMAT", "ID の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}
