package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// TreeReadRepository handles reads of the tree species catalog.
type TreeReadRepository struct {
	db *sqlx.DB
}

func NewTreeReadRepository(db *sqlx.DB) *TreeReadRepository {
	return &TreeReadRepository{db: db}
}

// List returns the full species catalog ordered by name.
func (r *TreeReadRepository) List(ctx context.Context) ([]models.TreeDB, error) {
	const query = `
		SELECT tree_id, name, scientific_name
		FROM trees
		ORDER BY name
	`

	trees := []models.TreeDB{}
	err := r.db.SelectContext(ctx, &trees, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(trees),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return trees, nil
}

// GetByID returns the species with the given id, or nil when absent.
func (r *TreeReadRepository) GetByID(ctx context.Context, treeID uuid.UUID) (*models.TreeDB, error) {
	const query = `
		SELECT tree_id, name, scientific_name
		FROM trees
		WHERE tree_id = $1
	`

	var tree models.TreeDB
	err := r.db.GetContext(ctx, &tree, query, treeID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{treeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

// GetByNames returns the species matching either name, or nil when absent.
// Used to enforce the double uniqueness of name and scientific_name.
func (r *TreeReadRepository) GetByNames(ctx context.Context, name, scientificName string) (*models.TreeDB, error) {
	const query = `
		SELECT tree_id, name, scientific_name
		FROM trees
		WHERE name = $1 OR scientific_name = $2
		LIMIT 1
	`

	var tree models.TreeDB
	err := r.db.GetContext(ctx, &tree, query, name, scientificName)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name, scientificName},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

// TreeWriteRepository handles writes to the tree species catalog.
type TreeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTreeWriteRepository(db *sqlx.DB, txGetter TxGetter) *TreeWriteRepository {
	return &TreeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new species.
func (r *TreeWriteRepository) Save(ctx context.Context, tree models.TreeDB) error {
	const query = `
		INSERT INTO trees (tree_id, name, scientific_name)
		VALUES ($1, $2, $3)
	`
	args := []any{tree.TreeID, tree.Name, tree.ScientificName}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update changes a species' names.
func (r *TreeWriteRepository) Update(ctx context.Context, tree models.TreeDB) (int64, error) {
	const query = `
		UPDATE trees
		SET name = $2, scientific_name = $3
		WHERE tree_id = $1
	`
	args := []any{tree.TreeID, tree.Name, tree.ScientificName}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes a species; planting rows referencing it cascade.
func (r *TreeWriteRepository) Delete(ctx context.Context, treeID uuid.UUID) (int64, error) {
	const query = `DELETE FROM trees WHERE tree_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, treeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{treeID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
