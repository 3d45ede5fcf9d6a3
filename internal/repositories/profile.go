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

// ProfileReadRepository handles profile read operations. Profiles are
// keyed by user id.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// List returns all profiles ordered by join time.
func (r *ProfileReadRepository) List(ctx context.Context) ([]models.ProfileDB, error) {
	const query = `
		SELECT user_id, about, joined
		FROM profiles
		ORDER BY joined
	`

	profiles := []models.ProfileDB{}
	err := r.db.SelectContext(ctx, &profiles, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(profiles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetByUserID returns the profile of the given user, or nil when absent.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT user_id, about, joined
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

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
	return &profile, nil
}

// ProfileWriteRepository handles profile write operations.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a profile for a user. Fails on the primary key when the
// user already has one.
func (r *ProfileWriteRepository) Save(ctx context.Context, profile models.ProfileDB) (*models.ProfileDB, error) {
	const query = `
		INSERT INTO profiles (user_id, about)
		VALUES ($1, $2)
		RETURNING user_id, about, joined
	`
	args := []any{profile.UserID, profile.About}

	var saved models.ProfileDB
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

// Update changes the about text. The join timestamp is never touched.
func (r *ProfileWriteRepository) Update(ctx context.Context, profile models.ProfileDB) (int64, error) {
	const query = `
		UPDATE profiles
		SET about = $2
		WHERE user_id = $1
	`
	args := []any{profile.UserID, profile.About}

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

// Delete removes a user's profile.
func (r *ProfileWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM profiles WHERE user_id = $1`

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
