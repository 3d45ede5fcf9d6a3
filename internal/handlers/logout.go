package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/treeseverywhere/api/internal/logger"
)

// Logouter defines the interface that the auth service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Log out
// @Description Revokes the presented JWT so it can no longer be used.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Router /logout [delete]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
