package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// TreeReader defines read-only operations for the species catalog.
type TreeReader interface {
	List(ctx context.Context) ([]models.TreeDB, error)
	GetByID(ctx context.Context, treeID uuid.UUID) (*models.TreeDB, error)
	GetByNames(ctx context.Context, name, scientificName string) (*models.TreeDB, error)
}

// TreeWriter defines write operations for the species catalog.
type TreeWriter interface {
	Save(ctx context.Context, tree models.TreeDB) error
	Update(ctx context.Context, tree models.TreeDB) (int64, error)
	Delete(ctx context.Context, treeID uuid.UUID) (int64, error)
}

// TreeService implements species catalog CRUD. Both the common and the
// scientific name are globally unique.
type TreeService struct {
	reader TreeReader
	writer TreeWriter
}

// NewTreeService creates a new TreeService instance.
func NewTreeService(reader TreeReader, writer TreeWriter) *TreeService {
	return &TreeService{reader: reader, writer: writer}
}

// List returns the full species catalog.
func (svc *TreeService) List(ctx context.Context) ([]models.TreeDB, error) {
	return svc.reader.List(ctx)
}

// Get returns one species by id.
func (svc *TreeService) Get(ctx context.Context, treeID uuid.UUID) (*models.TreeDB, error) {
	tree, err := svc.reader.GetByID(ctx, treeID)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrNotFound
	}
	return tree, nil
}

// Create adds a species to the catalog.
func (svc *TreeService) Create(ctx context.Context, name, scientificName string) (*models.TreeDB, error) {
	existing, err := svc.reader.GetByNames(ctx, name, scientificName)
	if err != nil {
		logger.Log.Errorw("failed to check tree exists", "name", name, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("tree already exists", "name", name, "scientific_name", scientificName)
		return nil, ErrAlreadyExists
	}

	tree := models.TreeDB{
		TreeID:         uuid.New(),
		Name:           name,
		ScientificName: scientificName,
	}
	if err := svc.writer.Save(ctx, tree); err != nil {
		logger.Log.Errorw("failed to save tree", "name", name, "err", err)
		return nil, err
	}
	return &tree, nil
}

// Update changes a species' names. Nil fields are left untouched.
func (svc *TreeService) Update(ctx context.Context, treeID uuid.UUID, name, scientificName *string) (*models.TreeDB, error) {
	tree, err := svc.Get(ctx, treeID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		tree.Name = *name
	}
	if scientificName != nil {
		tree.ScientificName = *scientificName
	}

	if name != nil || scientificName != nil {
		existing, err := svc.reader.GetByNames(ctx, tree.Name, tree.ScientificName)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.TreeID != treeID {
			return nil, ErrAlreadyExists
		}
	}

	if _, err := svc.writer.Update(ctx, *tree); err != nil {
		logger.Log.Errorw("failed to update tree", "tree_id", treeID, "err", err)
		return nil, err
	}
	return tree, nil
}

// Delete removes a species; planting rows referencing it cascade.
func (svc *TreeService) Delete(ctx context.Context, treeID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, treeID)
	if err != nil {
		logger.Log.Errorw("failed to delete tree", "tree_id", treeID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
