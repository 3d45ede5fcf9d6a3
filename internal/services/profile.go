package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	List(ctx context.Context) ([]models.ProfileDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Save(ctx context.Context, profile models.ProfileDB) (*models.ProfileDB, error)
	Update(ctx context.Context, profile models.ProfileDB) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ProfileService implements profile CRUD. Profiles are keyed by user id
// and each user has at most one.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
	users  UserReader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter, users UserReader) *ProfileService {
	return &ProfileService{reader: reader, writer: writer, users: users}
}

// view expands a profile row with its user.
func (svc *ProfileService) view(ctx context.Context, profile *models.ProfileDB) (*models.ProfileView, error) {
	user, err := svc.users.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	accounts, err := svc.users.ListAccounts(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileView{
		User:   models.NewUserView(user, accounts),
		About:  profile.About,
		Joined: profile.Joined,
	}, nil
}

// List returns all profiles with their users expanded.
func (svc *ProfileService) List(ctx context.Context) ([]models.ProfileView, error) {
	profiles, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProfileView, 0, len(profiles))
	for i := range profiles {
		v, err := svc.view(ctx, &profiles[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Get returns the profile of the given user.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileView, error) {
	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return svc.view(ctx, profile)
}

// Create adds a profile for a user. The caller may only create their own
// profile unless they are a superuser; a second profile for the same
// user is rejected.
func (svc *ProfileService) Create(ctx context.Context, caller *models.UserDB, userID uuid.UUID, about string) (*models.ProfileView, error) {
	if !isOwnerOrAdmin(caller, userID) {
		return nil, ErrForbidden
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	existing, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("profile already exists", "user_id", userID)
		return nil, ErrAlreadyExists
	}

	// The write runs on the request transaction, so the new row is not
	// visible to the read repository yet; Save returns it and the view
	// is assembled from the already-loaded user.
	saved, err := svc.writer.Save(ctx, models.ProfileDB{UserID: userID, About: about})
	if err != nil {
		logger.Log.Errorw("failed to save profile", "user_id", userID, "err", err)
		return nil, err
	}

	accounts, err := svc.users.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ProfileView{
		User:   models.NewUserView(user, accounts),
		About:  saved.About,
		Joined: saved.Joined,
	}, nil
}

// Update changes the about text. The caller must be the profile's user
// or a superuser.
func (svc *ProfileService) Update(ctx context.Context, caller *models.UserDB, userID uuid.UUID, about string) (*models.ProfileView, error) {
	if !isOwnerOrAdmin(caller, userID) {
		return nil, ErrForbidden
	}

	// Read the current row before the write lands on the request
	// transaction; the response is assembled in memory.
	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	rows, err := svc.writer.Update(ctx, models.ProfileDB{UserID: userID, About: about})
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	profile.About = about
	return svc.view(ctx, profile)
}

// Delete removes a user's profile. The caller must be the profile's user
// or a superuser.
func (svc *ProfileService) Delete(ctx context.Context, caller *models.UserDB, userID uuid.UUID) error {
	if !isOwnerOrAdmin(caller, userID) {
		return ErrForbidden
	}

	rows, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete profile", "user_id", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
