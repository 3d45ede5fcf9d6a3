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

// UserServicer defines the interface that the user service must implement.
type UserServicer interface {
	List(ctx context.Context) ([]models.UserView, error)
	Get(ctx context.Context, userID uuid.UUID) (*models.UserView, error)
	Create(ctx context.Context, username, password string, accountIDs []uuid.UUID) (*models.UserView, error)
	Update(ctx context.Context, caller *models.UserDB, userID uuid.UUID, update services.UserUpdate) (*models.UserView, error)
	Delete(ctx context.Context, caller *models.UserDB, userID uuid.UUID) error
}

// UserCreateRequest represents the JSON body for user creation
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// Username
	// required: true
	// default: zeus
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Accounts the user belongs to
	AccountIDs []uuid.UUID `json:"account_ids"`
}

// UserUpdateRequest represents the JSON body for a partial user update
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	Username    *string     `json:"username"`
	Password    *string     `json:"password"`
	IsActive    *bool       `json:"is_active"`
	IsStaff     *bool       `json:"is_staff"`
	IsSuperuser *bool       `json:"is_superuser"`
	AccountIDs  []uuid.UUID `json:"account_ids"`
}

// NewUserListHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserView
// @Router /users/ [get]
func NewUserListHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewUserGetHandler returns an HTTP handler fetching one user by id.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserView
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/ [get]
func NewUserGetHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		user, err := svc.Get(r.Context(), userID)
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

// NewUserCreateHandler returns an HTTP handler creating a user with account
// memberships.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userCreateRequest body handlers.UserCreateRequest true "User create request"
// @Success 201 {object} models.UserView
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / unknown account / invalid request"
// @Router /users/ [post]
func NewUserCreateHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Password, req.AccountIDs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusBadRequest, "Unknown account id")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewUserUpdateHandler returns an HTTP handler partially updating a user.
// Only the user themselves or an admin may update; privilege flags require
// a superuser caller.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "User update request"
// @Success 200 {object} models.UserView
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/ [patch]
func NewUserUpdateHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		user, err := svc.Update(r.Context(), caller, userID, services.UserUpdate{
			Username:    req.Username,
			Password:    req.Password,
			IsActive:    req.IsActive,
			IsStaff:     req.IsStaff,
			IsSuperuser: req.IsSuperuser,
			AccountIDs:  req.AccountIDs,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUserDeleteHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "User deleted"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/ [delete]
func NewUserDeleteHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		if err := svc.Delete(r.Context(), caller, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
