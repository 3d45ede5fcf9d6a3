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

// PlantedTreeReadRepository handles reads of planting records.
type PlantedTreeReadRepository struct {
	db *sqlx.DB
}

func NewPlantedTreeReadRepository(db *sqlx.DB) *PlantedTreeReadRepository {
	return &PlantedTreeReadRepository{db: db}
}

const plantedTreeColumns = `planted_tree_id, user_id, account_id, tree_id, planted_at, latitude, longitude`

// GetByID returns the planting with the given id, or nil when absent.
func (r *PlantedTreeReadRepository) GetByID(ctx context.Context, plantedTreeID uuid.UUID) (*models.PlantedTreeDB, error) {
	query := `
		SELECT ` + plantedTreeColumns + `
		FROM planted_trees
		WHERE planted_tree_id = $1
	`

	var planted models.PlantedTreeDB
	err := r.db.GetContext(ctx, &planted, query, plantedTreeID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{plantedTreeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &planted, nil
}

// ListByUserID returns all plantings recorded by a user, newest last.
func (r *PlantedTreeReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlantedTreeDB, error) {
	query := `
		SELECT ` + plantedTreeColumns + `
		FROM planted_trees
		WHERE user_id = $1
		ORDER BY planted_at
	`

	planted := []models.PlantedTreeDB{}
	err := r.db.SelectContext(ctx, &planted, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(planted),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return planted, nil
}

// ListByAccountName returns all plantings made on behalf of the named
// account, newest last.
func (r *PlantedTreeReadRepository) ListByAccountName(ctx context.Context, accountName string) ([]models.PlantedTreeDB, error) {
	query := `
		SELECT p.planted_tree_id, p.user_id, p.account_id, p.tree_id, p.planted_at, p.latitude, p.longitude
		FROM planted_trees p
		JOIN accounts a ON a.account_id = p.account_id
		WHERE a.name = $1
		ORDER BY p.planted_at
	`

	planted := []models.PlantedTreeDB{}
	err := r.db.SelectContext(ctx, &planted, query, accountName)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{accountName},
		"rows", len(planted),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return planted, nil
}

// PlantedTreeWriteRepository handles writes of planting records.
type PlantedTreeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPlantedTreeWriteRepository(db *sqlx.DB, txGetter TxGetter) *PlantedTreeWriteRepository {
	return &PlantedTreeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a planting row and returns it with the server-side
// planted_at timestamp filled in.
func (r *PlantedTreeWriteRepository) Save(ctx context.Context, planted models.PlantedTreeDB) (*models.PlantedTreeDB, error) {
	query := `
		INSERT INTO planted_trees (planted_tree_id, user_id, account_id, tree_id, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + plantedTreeColumns
	args := []any{planted.PlantedTreeID, planted.UserID, planted.AccountID, planted.TreeID, planted.Latitude, planted.Longitude}

	var saved models.PlantedTreeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update changes a planting's species, location and timestamp.
func (r *PlantedTreeWriteRepository) Update(ctx context.Context, planted models.PlantedTreeDB) (int64, error) {
	const query = `
		UPDATE planted_trees
		SET tree_id = $2, latitude = $3, longitude = $4, planted_at = $5
		WHERE planted_tree_id = $1
	`
	args := []any{planted.PlantedTreeID, planted.TreeID, planted.Latitude, planted.Longitude, planted.PlantedAt}

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

// Delete removes a planting record.
func (r *PlantedTreeWriteRepository) Delete(ctx context.Context, plantedTreeID uuid.UUID) (int64, error) {
	const query = `DELETE FROM planted_trees WHERE planted_tree_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, plantedTreeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{plantedTreeID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
