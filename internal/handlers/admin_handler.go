package handlers

import (
	"net/http"
	"strconv"

	"study_helper/internal/middleware"
	"study_helper/internal/model"
	"study_helper/internal/service"
	"study_helper/internal/webutil"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// ListUsers は全ユーザーの一覧を返します
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	offset, err := parseIntQuery(r, "offset", 0)
	if err != nil {
		logger.Warn("Invalid offset query parameter", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		logger.Warn("Invalid limit query parameter", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	users, err := h.service.ListUsers(r.Context(), offset, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	responses := make([]*model.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, model.NewUserResponse(user))
	}

	webutil.RespondWithJSON(w, http.StatusOK, responses)
}

// BanUser は指定したユーザーを無効化します
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		logger.Warn("Invalid user_id in path", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.BanUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user))
}

// parseIntQuery はクエリパラメータを非負整数として解釈します
func parseIntQuery(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, model.NewAppError("INVALID_QUERY_PARAMETER", "クエリパラメータの形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return value, nil
}
