package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/middlewares"
	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

// PlantingServicer defines the interface that the planting service must implement.
type PlantingServicer interface {
	Create(ctx context.Context, caller *models.UserDB, userID, accountID, treeID uuid.UUID, latitude, longitude float64) (*models.PlantedTreeView, error)
	CreateBatch(ctx context.Context, caller *models.UserDB, userID, accountID uuid.UUID, plantings []models.TreePlanting) ([]models.PlantedTreeView, []models.TreePlanting, error)
	Get(ctx context.Context, caller *models.UserDB, plantedTreeID uuid.UUID) (*models.PlantedTreeView, error)
	ListOwn(ctx context.Context, caller *models.UserDB) ([]models.PlantedTreeView, error)
	ListByUser(ctx context.Context, caller *models.UserDB, userID uuid.UUID) ([]models.PlantedTreeView, error)
	ListByAccountName(ctx context.Context, caller *models.UserDB, accountName string) ([]models.PlantedTreeView, error)
	Update(ctx context.Context, caller *models.UserDB, plantedTreeID uuid.UUID, update services.PlantedTreeUpdate) (*models.PlantedTreeView, error)
	Delete(ctx context.Context, caller *models.UserDB, plantedTreeID uuid.UUID) error
}

// PlantTreeRequest represents the JSON body for planting a single tree
// swagger:model PlantTreeRequest
type PlantTreeRequest struct {
	// Planting user id
	// required: true
	UserID uuid.UUID `json:"user_id"`

	// Account the planting is recorded under; the user must be a member
	// required: true
	AccountID uuid.UUID `json:"account_id"`

	// Tree species id
	// required: true
	TreeID uuid.UUID `json:"tree_id"`

	// Latitude in decimal degrees
	Latitude float64 `json:"latitude"`

	// Longitude in decimal degrees
	Longitude float64 `json:"longitude"`
}

// PlantTreesRequest represents the JSON body for planting several trees at once
// swagger:model PlantTreesRequest
type PlantTreesRequest struct {
	// Planting user id
	// required: true
	UserID uuid.UUID `json:"user_id"`

	// Account the plantings are recorded under
	// required: true
	AccountID uuid.UUID `json:"account_id"`

	// Plantings to record
	// required: true
	Plantings []models.TreePlanting `json:"plantings"`
}

// PlantTreesResponse represents the batch planting result
// swagger:model PlantTreesResponse
type PlantTreesResponse struct {
	// Plantings that were recorded
	Success []models.PlantedTreeView `json:"success"`

	// Plantings that were rejected
	Failed []models.TreePlanting `json:"failed"`
}

// PlantedTreeUpdateRequest represents the JSON body for a partial planting update
// swagger:model PlantedTreeUpdateRequest
type PlantedTreeUpdateRequest struct {
	TreeID    *uuid.UUID `json:"tree_id"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	PlantedAt *time.Time `json:"planted_at"`
}

// NewPlantedListHandler returns an HTTP handler that rejects unscoped planting
// listings. Plantings are only listed through the own, account and per-user
// endpoints.
// @Summary List plantings (not allowed)
// @Tags planted
// @Produce json
// @Failure 405 {object} handlers.ErrorResponse "Method not allowed"
// @Router /planted/ [get]
func NewPlantedListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// NewPlantedGetHandler returns an HTTP handler fetching one planting by id.
// Only the planting user or an admin may read it.
// @Summary Get a planting
// @Tags planted
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planted tree ID"
// @Success 200 {object} models.PlantedTreeView
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Planting not found"
// @Router /planted/{id}/ [get]
func NewPlantedGetHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantedTreeID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Planting not found")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		planted, err := svc.Get(r.Context(), caller, plantedTreeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Planting not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, planted)
	}
}

// NewPlantedCreateHandler returns an HTTP handler recording a single planting.
// @Summary Plant a tree
// @Description Records a planting for a user under one of their accounts.
// @Tags planted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plantTreeRequest body handlers.PlantTreeRequest true "Plant tree request"
// @Success 201 {object} models.PlantedTreeView
// @Failure 400 {object} handlers.ErrorResponse "User is not a member of the account / unknown tree / invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /planted/ [post]
func NewPlantedCreateHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlantTreeRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == uuid.Nil || req.AccountID == uuid.Nil || req.TreeID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "user_id, account_id and tree_id are required")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		planted, err := svc.Create(r.Context(), caller, req.UserID, req.AccountID, req.TreeID, req.Latitude, req.Longitude)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrInvalidMembership):
				writeError(w, http.StatusBadRequest, "User is not a member of the account")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusBadRequest, "Unknown tree or account")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, planted)
	}
}

// NewPlantedCreateBatchHandler returns an HTTP handler recording several
// plantings in one call. Individually failing items are reported back, not
// dropped silently.
// @Summary Plant several trees
// @Tags planted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plantTreesRequest body handlers.PlantTreesRequest true "Plant trees request"
// @Success 201 {object} handlers.PlantTreesResponse
// @Failure 400 {object} handlers.ErrorResponse "User is not a member of the account / invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /planted/batch/ [post]
func NewPlantedCreateBatchHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlantTreesRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == uuid.Nil || req.AccountID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "user_id and account_id are required")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		success, failed, err := svc.CreateBatch(r.Context(), caller, req.UserID, req.AccountID, req.Plantings)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrInvalidMembership):
				writeError(w, http.StatusBadRequest, "User is not a member of the account")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusBadRequest, "Unknown user or account")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		if success == nil {
			success = []models.PlantedTreeView{}
		}
		if failed == nil {
			failed = []models.TreePlanting{}
		}
		writeJSON(w, http.StatusCreated, PlantTreesResponse{Success: success, Failed: failed})
	}
}

// NewPlantedOwnHandler returns an HTTP handler listing the caller's plantings.
// @Summary List own plantings
// @Tags planted
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PlantedTreeView
// @Router /planted/own/ [get]
func NewPlantedOwnHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())

		planted, err := svc.ListOwn(r.Context(), caller)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, planted)
	}
}

// NewPlantedByAccountHandler returns an HTTP handler listing the plantings of
// every member of an account, named by the account query parameter. The caller
// must be a member of that account or a superuser.
// @Summary List plantings of an account
// @Tags planted
// @Produce json
// @Security BearerAuth
// @Param account query string true "Account name"
// @Success 200 {array} models.PlantedTreeView
// @Failure 400 {object} handlers.ErrorResponse "Missing account parameter"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /planted/account/ [get]
func NewPlantedByAccountHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountName := r.URL.Query().Get("account")
		if accountName == "" {
			writeError(w, http.StatusBadRequest, "account query parameter is required")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		planted, err := svc.ListByAccountName(r.Context(), caller, accountName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Account not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, planted)
	}
}

// NewPlantedByUserHandler returns an HTTP handler listing the plantings of a
// given user. Only that user or an admin may read the listing.
// @Summary List plantings of a user
// @Tags planted
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} models.PlantedTreeView
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/planted/ [get]
func NewPlantedByUserHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		planted, err := svc.ListByUser(r.Context(), caller, userID)
		if err != nil {
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
		writeJSON(w, http.StatusOK, planted)
	}
}

// NewPlantedUpdateHandler returns an HTTP handler partially updating a planting.
// @Summary Update a planting
// @Tags planted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planted tree ID"
// @Param plantedTreeUpdateRequest body handlers.PlantedTreeUpdateRequest true "Planting update request"
// @Success 200 {object} models.PlantedTreeView
// @Failure 400 {object} handlers.ErrorResponse "Unknown tree / invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Planting not found"
// @Router /planted/{id}/ [patch]
func NewPlantedUpdateHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantedTreeID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Planting not found")
			return
		}

		var req PlantedTreeUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		planted, err := svc.Update(r.Context(), caller, plantedTreeID, services.PlantedTreeUpdate{
			TreeID:    req.TreeID,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			PlantedAt: req.PlantedAt,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Planting not found")
			case errors.Is(err, services.ErrInvalidMembership):
				writeError(w, http.StatusBadRequest, "User is not a member of the account")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, planted)
	}
}

// NewPlantedDeleteHandler returns an HTTP handler deleting a planting.
// @Summary Delete a planting
// @Tags planted
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planted tree ID"
// @Success 204 "Planting deleted"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Planting not found"
// @Router /planted/{id}/ [delete]
func NewPlantedDeleteHandler(svc PlantingServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plantedTreeID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Planting not found")
			return
		}

		caller := middlewares.GetUserFromContext(r.Context())

		if err := svc.Delete(r.Context(), caller, plantedTreeID); err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Forbidden")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Planting not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
