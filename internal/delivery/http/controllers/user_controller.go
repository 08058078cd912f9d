package controllers

import (
	"log/slog"
	"net/http"

	"interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/domain"
)

// GetMeSuccessResponse is the success envelope for GET /api/users/me (200).
type GetMeSuccessResponse struct {
	Success bool        `json:"success"`
	Data    domain.User `json:"data"`
}

// UserController handles the signed-in user's profile.
type UserController struct {
	Logger   *slog.Logger
	Adapters domain.AdapterProvider
}

// NewUserController creates a UserController with the given logger and adapter provider.
func NewUserController(logger *slog.Logger, adapters domain.AdapterProvider) *UserController {
	return &UserController{
		Logger:   logger,
		Adapters: adapters,
	}
}

// GetMe godoc
// @Summary Get current user
// @Description Returns the recruiter bound to the session (id, name, email, role, brand).
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.GetMeSuccessResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/users/me [get]
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	adapter := adapterFor(w, r, c.Adapters)
	if adapter == nil {
		return
	}
	user, err := adapter.GetCurrentUser(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to load user")
		return
	}
	if user == nil {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "no user bound to session")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
