package handlers

import (
	"errors"
	"net/http"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/service"
	"study_helper/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AttemptHandler struct {
	service service.AttemptService
}

func NewAttemptHandler(s service.AttemptService) *AttemptHandler {
	return &AttemptHandler{service: s}
}

// RecordAttempt は問題への解答試行を記録します
func (h *AttemptHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
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

	var req model.RecordAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for attempt", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for attempt", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	attempt, err := h.service.RecordAttempt(r.Context(), user.UserID, problemID, *req.IsCorrect, *req.TimeSpentSec)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, attempt)
}
