package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// UserReader defines read-only operations for users and their account
// memberships.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.AccountDB, error)
	IsMember(ctx context.Context, userID, accountID uuid.UUID) (bool, error)
	IsMemberOfAccountName(ctx context.Context, userID uuid.UUID, accountName string) (bool, error)
}

// UserWriter defines write operations for users and their account
// memberships.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	Update(ctx context.Context, user models.UserDB) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID) (int64, error)
	ReplaceAccounts(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) error
}

// isOwnerOrAdmin reports whether the caller may act on a resource owned
// by ownerID. Superusers may act on anything; anonymous callers on
// nothing.
func isOwnerOrAdmin(caller *models.UserDB, ownerID uuid.UUID) bool {
	if caller == nil {
		return false
	}
	if caller.IsSuperuser {
		return true
	}
	return caller.UserID == ownerID
}

// UserUpdate carries the optional fields of a user update; nil fields
// are left untouched.
type UserUpdate struct {
	Username    *string
	Password    *string
	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
	AccountIDs  []uuid.UUID
}

// UserService implements user CRUD and membership assignment.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	accounts AccountReader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, accounts AccountReader) *UserService {
	return &UserService{reader: reader, writer: writer, accounts: accounts}
}

// view expands a user row into its serialized shape with memberships.
func (svc *UserService) view(ctx context.Context, user *models.UserDB) (*models.UserView, error) {
	accounts, err := svc.reader.ListAccounts(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list user accounts", "user_id", user.UserID, "err", err)
		return nil, err
	}
	v := models.NewUserView(user, accounts)
	return &v, nil
}

// List returns all users with their memberships expanded.
func (svc *UserService) List(ctx context.Context) ([]models.UserView, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		v, err := svc.view(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Get returns one user by id.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserView, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return svc.view(ctx, user)
}

// Create registers a new user and assigns its account memberships.
// Every referenced account must exist.
func (svc *UserService) Create(ctx context.Context, username, password string, accountIDs []uuid.UUID) (*models.UserView, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, ErrAlreadyExists
	}

	accounts := make([]models.AccountDB, 0, len(accountIDs))
	for _, accountID := range accountIDs {
		account, err := svc.accounts.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, ErrNotFound
		}
		accounts = append(accounts, *account)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}
	// The write runs on the request transaction, so the new row and its
	// memberships are not visible to the read repository yet. Save
	// returns the inserted row and the view is assembled in memory.
	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	if len(accountIDs) > 0 {
		if err := svc.writer.ReplaceAccounts(ctx, saved.UserID, accountIDs); err != nil {
			logger.Log.Errorw("failed to assign accounts", "user_id", saved.UserID, "err", err)
			return nil, err
		}
	}

	v := models.NewUserView(saved, accounts)
	return &v, nil
}

// Update changes a user. The caller must be the user or a superuser.
func (svc *UserService) Update(ctx context.Context, caller *models.UserDB, userID uuid.UUID, update UserUpdate) (*models.UserView, error) {
	if !isOwnerOrAdmin(caller, userID) {
		return nil, ErrForbidden
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if update.Username != nil && *update.Username != user.Username {
		existing, err := svc.reader.GetByUsername(ctx, *update.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAlreadyExists
		}
		user.Username = *update.Username
	}
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	// Only superusers may grant staff or superuser flags.
	if caller.IsSuperuser {
		if update.IsStaff != nil {
			user.IsStaff = *update.IsStaff
		}
		if update.IsSuperuser != nil {
			user.IsSuperuser = *update.IsSuperuser
		}
	}

	// Memberships for the response are resolved before the writes land
	// on the request transaction: replaced sets are validated against
	// the account table, untouched sets read from the current state.
	var accounts []models.AccountDB
	if update.AccountIDs != nil {
		accounts = make([]models.AccountDB, 0, len(update.AccountIDs))
		for _, accountID := range update.AccountIDs {
			account, err := svc.accounts.GetByID(ctx, accountID)
			if err != nil {
				return nil, err
			}
			if account == nil {
				return nil, ErrNotFound
			}
			accounts = append(accounts, *account)
		}
	} else {
		accounts, err = svc.reader.ListAccounts(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if _, err := svc.writer.Update(ctx, *user); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}

	if update.AccountIDs != nil {
		if err := svc.writer.ReplaceAccounts(ctx, userID, update.AccountIDs); err != nil {
			return nil, err
		}
	}

	v := models.NewUserView(user, accounts)
	return &v, nil
}

// Delete removes a user; profile and planting rows cascade. The caller
// must be the user or a superuser.
func (svc *UserService) Delete(ctx context.Context, caller *models.UserDB, userID uuid.UUID) error {
	if !isOwnerOrAdmin(caller, userID) {
		return ErrForbidden
	}

	rows, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
