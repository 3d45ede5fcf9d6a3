package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	List(ctx context.Context) ([]models.AccountDB, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
	GetByName(ctx context.Context, name string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, account models.AccountDB) (*models.AccountDB, error)
	Update(ctx context.Context, account models.AccountDB) (int64, error)
	Delete(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// AccountService implements account CRUD with name uniqueness checks.
type AccountService struct {
	reader AccountReader
	writer AccountWriter
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(reader AccountReader, writer AccountWriter) *AccountService {
	return &AccountService{reader: reader, writer: writer}
}

// List returns all accounts.
func (svc *AccountService) List(ctx context.Context) ([]models.AccountDB, error) {
	return svc.reader.List(ctx)
}

// Get returns one account by id.
func (svc *AccountService) Get(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "account_id", accountID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

// Create registers a new account with a unique name.
func (svc *AccountService) Create(ctx context.Context, name string, active bool) (*models.AccountDB, error) {
	existing, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "name", name, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("account already exists", "name", name)
		return nil, ErrAlreadyExists
	}

	account := models.AccountDB{
		AccountID: uuid.New(),
		Name:      name,
		Active:    active,
	}
	// The write runs on the request transaction, so the row is not
	// visible to the read repository yet; Save returns it instead.
	saved, err := svc.writer.Save(ctx, account)
	if err != nil {
		logger.Log.Errorw("failed to save account", "name", name, "err", err)
		return nil, err
	}
	return saved, nil
}

// Update changes an account's name and/or active flag. Nil fields are
// left untouched (partial update).
func (svc *AccountService) Update(ctx context.Context, accountID uuid.UUID, name *string, active *bool) (*models.AccountDB, error) {
	account, err := svc.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != account.Name {
		existing, err := svc.reader.GetByName(ctx, *name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAlreadyExists
		}
		account.Name = *name
	}
	if active != nil {
		account.Active = *active
	}

	if _, err := svc.writer.Update(ctx, *account); err != nil {
		logger.Log.Errorw("failed to update account", "account_id", accountID, "err", err)
		return nil, err
	}
	return account, nil
}

// Delete removes an account and, via cascade, its planting records.
func (svc *AccountService) Delete(ctx context.Context, accountID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to delete account", "account_id", accountID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
