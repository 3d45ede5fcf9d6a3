package handlers

import (
	"errors"
	"net/http"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/middlewares"
	"github.com/treeseverywhere/api/internal/services"
)

// NewMeHandler returns an HTTP handler serving the authenticated caller's
// own serialized user.
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserView
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /me [get]
func NewMeHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := svc.Get(r.Context(), caller.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
