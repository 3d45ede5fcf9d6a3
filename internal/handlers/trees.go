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

// TreeServicer defines the interface that the tree service must implement.
type TreeServicer interface {
	List(ctx context.Context) ([]models.TreeDB, error)
	Get(ctx context.Context, treeID uuid.UUID) (*models.TreeDB, error)
	Create(ctx context.Context, name, scientificName string) (*models.TreeDB, error)
	Update(ctx context.Context, treeID uuid.UUID, name, scientificName *string) (*models.TreeDB, error)
	Delete(ctx context.Context, treeID uuid.UUID) error
}

// TreeCreateRequest represents the JSON body for tree species creation
// swagger:model TreeCreateRequest
type TreeCreateRequest struct {
	// Common name
	// required: true
	// default: Olive
	Name string `json:"name"`

	// Scientific name
	// required: true
	// default: Olea europaea
	ScientificName string `json:"scientific_name"`
}

// TreeUpdateRequest represents the JSON body for a partial tree update
// swagger:model TreeUpdateRequest
type TreeUpdateRequest struct {
	Name           *string `json:"name"`
	ScientificName *string `json:"scientific_name"`
}

// NewTreeListHandler returns an HTTP handler listing all tree species.
// @Summary List trees
// @Tags trees
// @Produce json
// @Success 200 {array} models.TreeDB
// @Router /trees/ [get]
func NewTreeListHandler(svc TreeServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trees, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, trees)
	}
}

// NewTreeGetHandler returns an HTTP handler fetching one tree species by id.
// @Summary Get a tree
// @Tags trees
// @Produce json
// @Param id path string true "Tree ID"
// @Success 200 {object} models.TreeDB
// @Failure 404 {object} handlers.ErrorResponse "Tree not found"
// @Router /trees/{id}/ [get]
func NewTreeGetHandler(svc TreeServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		treeID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Tree not found")
			return
		}

		tree, err := svc.Get(r.Context(), treeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Tree not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, tree)
	}
}

// NewTreeCreateHandler returns an HTTP handler creating a tree species.
// @Summary Create a tree
// @Tags trees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param treeCreateRequest body handlers.TreeCreateRequest true "Tree create request"
// @Success 201 {object} models.TreeDB
// @Failure 400 {object} handlers.ErrorResponse "Tree name already exists / invalid request"
// @Router /trees/ [post]
func NewTreeCreateHandler(svc TreeServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TreeCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" || req.ScientificName == "" {
			writeError(w, http.StatusBadRequest, "Name and scientific name are required")
			return
		}

		tree, err := svc.Create(r.Context(), req.Name, req.ScientificName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Tree name already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, tree)
	}
}

// NewTreeUpdateHandler returns an HTTP handler partially updating a tree species.
// @Summary Update a tree
// @Tags trees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tree ID"
// @Param treeUpdateRequest body handlers.TreeUpdateRequest true "Tree update request"
// @Success 200 {object} models.TreeDB
// @Failure 400 {object} handlers.ErrorResponse "Tree name already exists / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Tree not found"
// @Router /trees/{id}/ [patch]
func NewTreeUpdateHandler(svc TreeServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		treeID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Tree not found")
			return
		}

		var req TreeUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		tree, err := svc.Update(r.Context(), treeID, req.Name, req.ScientificName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Tree not found")
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "Tree name already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, tree)
	}
}

// NewTreeDeleteHandler returns an HTTP handler deleting a tree species.
// @Summary Delete a tree
// @Tags trees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tree ID"
// @Success 204 "Tree deleted"
// @Failure 404 {object} handlers.ErrorResponse "Tree not found"
// @Router /trees/{id}/ [delete]
func NewTreeDeleteHandler(svc TreeServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		treeID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "Tree not found")
			return
		}

		if err := svc.Delete(r.Context(), treeID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Tree not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
