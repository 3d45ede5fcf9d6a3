package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

func newUserService(ctrl *gomock.Controller) (*services.UserService, *services.MockUserReader, *services.MockUserWriter, *services.MockAccountReader) {
	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockAccounts := services.NewMockAccountReader(ctrl)
	return services.NewUserService(mockReader, mockWriter, mockAccounts), mockReader, mockWriter, mockAccounts
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	account := &models.AccountDB{AccountID: accountID, Name: "Gods", Active: true}

	t.Run("creates with memberships", func(t *testing.T) {
		svc, mockReader, mockWriter, mockAccounts := newUserService(ctrl)

		var savedID uuid.UUID
		mockReader.EXPECT().GetByUsername(gomock.Any(), "zeus").Return(nil, nil)
		mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
		// The view is assembled from the row Save returns and the
		// validated accounts; nothing re-reads through the reader.
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(models.UserDB{})).
			DoAndReturn(func(_ context.Context, user models.UserDB) (*models.UserDB, error) {
				savedID = user.UserID
				assert.Equal(t, "zeus", user.Username)
				assert.True(t, user.IsActive)
				assert.NotEqual(t, "secret", user.PasswordHash)
				return &user, nil
			})
		mockWriter.EXPECT().
			ReplaceAccounts(gomock.Any(), gomock.Any(), []uuid.UUID{accountID}).
			DoAndReturn(func(_ context.Context, userID uuid.UUID, _ []uuid.UUID) error {
				assert.Equal(t, savedID, userID)
				return nil
			})

		view, err := svc.Create(context.Background(), "zeus", "secret", []uuid.UUID{accountID})
		assert.NoError(t, err)
		assert.Equal(t, "zeus", view.Username)
		assert.Len(t, view.Accounts, 1)
		assert.Equal(t, "Gods", view.Accounts[0].Name)
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		svc, mockReader, _, mockAccounts := newUserService(ctrl)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "zeus").Return(nil, nil)
		mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(nil, nil)

		_, err := svc.Create(context.Background(), "zeus", "secret", []uuid.UUID{accountID})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		svc, mockReader, _, _ := newUserService(ctrl)

		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "zeus").
			Return(&models.UserDB{UserID: uuid.New(), Username: "zeus"}, nil)

		_, err := svc.Create(context.Background(), "zeus", "secret", nil)
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "zeus", IsActive: true}

	t.Run("non-superuser cannot grant privilege flags", func(t *testing.T) {
		svc, mockReader, mockWriter, _ := newUserService(ctrl)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockReader.EXPECT().ListAccounts(gomock.Any(), userID).Return(nil, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.AssignableToTypeOf(models.UserDB{})).
			DoAndReturn(func(_ context.Context, updated models.UserDB) (int64, error) {
				assert.False(t, updated.IsStaff)
				assert.False(t, updated.IsSuperuser)
				return 1, nil
			})

		wantStaff := true
		caller := &models.UserDB{UserID: userID, IsActive: true}
		_, err := svc.Update(context.Background(), caller, userID, services.UserUpdate{IsStaff: &wantStaff})
		assert.NoError(t, err)
	})

	t.Run("superuser grants staff flag", func(t *testing.T) {
		svc, mockReader, mockWriter, _ := newUserService(ctrl)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockReader.EXPECT().ListAccounts(gomock.Any(), userID).Return(nil, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.AssignableToTypeOf(models.UserDB{})).
			DoAndReturn(func(_ context.Context, updated models.UserDB) (int64, error) {
				assert.True(t, updated.IsStaff)
				return 1, nil
			})

		wantStaff := true
		caller := &models.UserDB{UserID: uuid.New(), IsActive: true, IsSuperuser: true}
		view, err := svc.Update(context.Background(), caller, userID, services.UserUpdate{IsStaff: &wantStaff})
		assert.NoError(t, err)
		assert.True(t, view.IsStaff)
	})

	t.Run("updating another user is forbidden", func(t *testing.T) {
		svc, _, _, _ := newUserService(ctrl)

		caller := &models.UserDB{UserID: uuid.New(), IsActive: true}
		_, err := svc.Update(context.Background(), caller, userID, services.UserUpdate{})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("replaces memberships", func(t *testing.T) {
		svc, mockReader, mockWriter, mockAccounts := newUserService(ctrl)

		accountID := uuid.New()
		account := &models.AccountDB{AccountID: accountID, Name: "Gods"}

		// The replaced set is validated against the account table and
		// echoed back; the membership join is not re-read.
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		mockWriter.EXPECT().ReplaceAccounts(gomock.Any(), userID, []uuid.UUID{accountID}).Return(nil)

		caller := &models.UserDB{UserID: userID, IsActive: true}
		view, err := svc.Update(context.Background(), caller, userID, services.UserUpdate{AccountIDs: []uuid.UUID{accountID}})
		assert.NoError(t, err)
		assert.Len(t, view.Accounts, 1)
		assert.Equal(t, "Gods", view.Accounts[0].Name)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("deleting another user is forbidden", func(t *testing.T) {
		svc, _, _, _ := newUserService(ctrl)

		caller := &models.UserDB{UserID: uuid.New(), IsActive: true}
		assert.ErrorIs(t, svc.Delete(context.Background(), caller, userID), services.ErrForbidden)
	})

	t.Run("superuser deletes anyone", func(t *testing.T) {
		svc, _, mockWriter, _ := newUserService(ctrl)

		mockWriter.EXPECT().Delete(gomock.Any(), userID).Return(int64(1), nil)

		caller := &models.UserDB{UserID: uuid.New(), IsActive: true, IsSuperuser: true}
		assert.NoError(t, svc.Delete(context.Background(), caller, userID))
	})
}
