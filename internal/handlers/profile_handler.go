package handlers

import (
	"net/http"

	"study_helper/internal/middleware"
	"study_helper/internal/service"
	"study_helper/internal/webutil"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// GetProfile は認証済みユーザーの学習プロファイルを返します
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.BuildProfile(r.Context(), user.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile)
}
