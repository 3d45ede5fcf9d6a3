package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/middlewares"
	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

// ProfileServicer defines the interface that the profile service must implement.
type ProfileServicer interface {
	List(ctx context.Context) ([]models.ProfileView, error)
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileView, error)
	Create(ctx context.Context, caller *models.UserDB, userID uuid.UUID, about string) (*models.ProfileView, error)
	Update(ctx context.Context, caller *models.UserDB, userID uuid.UUID, about string) (*models.ProfileView, error)
	Delete(ctx context.Context, caller *models.UserDB, userID uuid.UUID) error
}

// ProfileCreateRequest represents the JSON body for profile creation
// swagger:model ProfileCreateRequest
type ProfileCreateRequest struct {
	// Owner user id
	// required: true
	UserID uuid.UUID `json:"user_id"`

	// Free-form description
	About string `json:"about"`
}

// ProfileUpdateRequest represents the JSON body for a profile update
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	About string `json:"about"`
}

// NewProfileListHandler returns an HTTP handler listing all profiles.
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} models.ProfileView
// @Router /profiles/ [get]
func NewProfileListHandler(svc ProfileServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, profiles)
	}
}

// NewProfileGetHandler returns an HTTP handler fetching the profile of a user.
// Profiles are keyed by their owner's user id.
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.ProfileView
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/{id}/ [get]
func NewProfileGetHandler(svc ProfileServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}

		profile, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Profile not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewProfileCreateHandler returns an HTTP handler creating a profile for a user.
// @Summary Create a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileCreateRequest body handlers.ProfileCreateRequest true "Profile create request"
// @Success 201 {object} models.ProfileView
// @Failure 400 {object} handlers.ErrorResponse "Profile already exists / invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profiles/ [post]
func NewProfileCreateHandler(svc ProfileServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		profile, err := svc.Create(r.Context(), caller, req.UserID, req.About)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Profile already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, profile)
	}
}

// NewProfileUpdateHandler returns an HTTP handler updating a profile.
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile update request"
// @Success 200 {object} models.ProfileView
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/{id}/ [patch]
func NewProfileUpdateHandler(svc ProfileServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		profile, err := svc.Update(r.Context(), caller, userID, req.About)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Profile not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewProfileDeleteHandler returns an HTTP handler deleting a profile.
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "Profile deleted"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/{id}/ [delete]
func NewProfileDeleteHandler(svc ProfileServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		if err := svc.Delete(r.Context(), caller, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Profile not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
