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

// UserReadRepository handles user read operations, including account
// membership lookups.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns all users ordered by username.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, is_active, is_staff, is_superuser, date_joined
		FROM users
		ORDER BY username
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, is_active, is_staff, is_superuser, date_joined
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, is_active, is_staff, is_superuser, date_joined
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAccounts returns the accounts the user is a member of, ordered by
// creation time.
func (r *UserReadRepository) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.AccountDB, error) {
	const query = `
		SELECT a.account_id, a.name, a.created, a.active
		FROM accounts a
		JOIN account_users au ON au.account_id = a.account_id
		WHERE au.user_id = $1
		ORDER BY a.created
	`

	accounts := []models.AccountDB{}
	err := r.db.SelectContext(ctx, &accounts, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// IsMember reports whether the user belongs to the account.
func (r *UserReadRepository) IsMember(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM account_users
			WHERE user_id = $1 AND account_id = $2
		)
	`

	var member bool
	err := r.db.GetContext(ctx, &member, query, userID, accountID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, accountID},
		"result", member,
		"error", err,
	)

	return member, err
}

// IsMemberOfAccountName reports whether the user belongs to the account
// with the given name.
func (r *UserReadRepository) IsMemberOfAccountName(ctx context.Context, userID uuid.UUID, accountName string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM account_users au
			JOIN accounts a ON a.account_id = au.account_id
			WHERE au.user_id = $1 AND a.name = $2
		)
	`

	var member bool
	err := r.db.GetContext(ctx, &member, query, userID, accountName)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, accountName},
		"result", member,
		"error", err,
	)

	return member, err
}

// UserWriteRepository handles user write operations, including membership
// assignment.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user row and returns it with the server-side join
// timestamp filled in.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, username, password_hash, is_active, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, username, password_hash, is_active, is_staff, is_superuser, date_joined
	`
	args := []any{user.UserID, user.Username, user.PasswordHash, user.IsActive, user.IsStaff, user.IsSuperuser}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username, user.IsActive, user.IsStaff, user.IsSuperuser},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update changes the mutable user fields. date_joined is never touched.
func (r *UserWriteRepository) Update(ctx context.Context, user models.UserDB) (int64, error) {
	const query = `
		UPDATE users
		SET username = $2, password_hash = $3, is_active = $4, is_staff = $5, is_superuser = $6
		WHERE user_id = $1
	`
	args := []any{user.UserID, user.Username, user.PasswordHash, user.IsActive, user.IsStaff, user.IsSuperuser}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username, user.IsActive, user.IsStaff, user.IsSuperuser},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes a user; the profile and planting rows cascade.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// ReplaceAccounts rewrites the user's account memberships to exactly the
// given set.
func (r *UserWriteRepository) ReplaceAccounts(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) error {
	ex := executor(ctx, r.db, r.txGetter)

	const deleteQuery = `DELETE FROM account_users WHERE user_id = $1`
	if _, err := ex.ExecContext(ctx, deleteQuery, userID); err != nil {
		logger.Log.Infow("query", "sql", deleteQuery, "args", []any{userID}, "error", err)
		return err
	}

	const insertQuery = `INSERT INTO account_users (account_id, user_id) VALUES ($1, $2)`
	for _, accountID := range accountIDs {
		if _, err := ex.ExecContext(ctx, insertQuery, accountID, userID); err != nil {
			logger.Log.Infow("query", "sql", insertQuery, "args", []any{accountID, userID}, "error", err)
			return err
		}
	}

	logger.Log.Infow("memberships replaced", "user_id", userID, "accounts", len(accountIDs))
	return nil
}
