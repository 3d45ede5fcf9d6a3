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

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// List returns all accounts ordered by creation time.
func (r *AccountReadRepository) List(ctx context.Context) ([]models.AccountDB, error) {
	const query = `
		SELECT account_id, name, created, active
		FROM accounts
		ORDER BY created
	`

	accounts := []models.AccountDB{}
	err := r.db.SelectContext(ctx, &accounts, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetByID returns the account with the given id, or nil when absent.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, created, active
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByName returns the account with the given name, or nil when absent.
func (r *AccountReadRepository) GetByName(ctx context.Context, name string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, created, active
		FROM accounts
		WHERE name = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, name)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountWriteRepository handles account write operations.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter TxGetter) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new account and returns it with the server-side
// created timestamp filled in.
func (r *AccountWriteRepository) Save(ctx context.Context, account models.AccountDB) (*models.AccountDB, error) {
	const query = `
		INSERT INTO accounts (account_id, name, active)
		VALUES ($1, $2, $3)
		RETURNING account_id, name, created, active
	`
	args := []any{account.AccountID, account.Name, account.Active}

	var saved models.AccountDB
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

// Update changes the mutable account fields. The created timestamp is
// never touched.
func (r *AccountWriteRepository) Update(ctx context.Context, account models.AccountDB) (int64, error) {
	const query = `
		UPDATE accounts
		SET name = $2, active = $3
		WHERE account_id = $1
	`
	args := []any{account.AccountID, account.Name, account.Active}

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

// Delete removes an account; dependent planting rows cascade.
func (r *AccountWriteRepository) Delete(ctx context.Context, accountID uuid.UUID) (int64, error) {
	const query = `DELETE FROM accounts WHERE account_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, accountID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{accountID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
