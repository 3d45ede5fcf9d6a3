package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

// AccountServicer defines the interface that the account service must implement.
type AccountServicer interface {
	List(ctx context.Context) ([]models.AccountDB, error)
	Get(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
	Create(ctx context.Context, name string, active bool) (*models.AccountDB, error)
	Update(ctx context.Context, accountID uuid.UUID, name *string, active *bool) (*models.AccountDB, error)
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// AccountCreateRequest represents the JSON body for account creation
// swagger:model AccountCreateRequest
type AccountCreateRequest struct {
	// Account name
	// required: true
	// default: Gods
	Name string `json:"name"`

	// Whether the account is active
	// default: true
	Active *bool `json:"active"`
}

// AccountUpdateRequest represents the JSON body for a partial account update
// swagger:model AccountUpdateRequest
type AccountUpdateRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// NewAccountListHandler returns an HTTP handler listing all accounts.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} models.AccountDB
// @Router /accounts/ [get]
func NewAccountListHandler(svc AccountServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, accounts)
	}
}

// NewAccountGetHandler returns an HTTP handler fetching one account by id.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.AccountDB
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id}/ [get]
func NewAccountGetHandler(svc AccountServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}

		account, err := svc.Get(r.Context(), accountID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Account not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

// NewAccountCreateHandler returns an HTTP handler creating an account.
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param accountCreateRequest body handlers.AccountCreateRequest true "Account create request"
// @Success 201 {object} models.AccountDB
// @Failure 400 {object} handlers.ErrorResponse "Account name already exists / invalid request"
// @Router /accounts/ [post]
func NewAccountCreateHandler(svc AccountServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccountCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "Account name is required")
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		account, err := svc.Create(r.Context(), req.Name, active)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Account name already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, account)
	}
}

// NewAccountUpdateHandler returns an HTTP handler partially updating an account.
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param accountUpdateRequest body handlers.AccountUpdateRequest true "Account update request"
// @Success 200 {object} models.AccountDB
// @Failure 400 {object} handlers.ErrorResponse "Account name already exists / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id}/ [patch]
func NewAccountUpdateHandler(svc AccountServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}

		var req AccountUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		account, err := svc.Update(r.Context(), accountID, req.Name, req.Active)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Account not found")
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Account name already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

// NewAccountDeleteHandler returns an HTTP handler deleting an account.
// @Summary Delete an account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 204 "Account deleted"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id}/ [delete]
func NewAccountDeleteHandler(svc AccountServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}

		if err := svc.Delete(r.Context(), accountID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Account not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
