package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

func TestAccountService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	svc := services.NewAccountService(mockReader, mockWriter)

	t.Run("creates with a unique name", func(t *testing.T) {
		created := time.Now()

		mockReader.EXPECT().GetByName(gomock.Any(), "Gods").Return(nil, nil)
		// The response comes from the row the writer returns; the read
		// repository would not see the uncommitted insert.
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(models.AccountDB{})).
			DoAndReturn(func(_ context.Context, account models.AccountDB) (*models.AccountDB, error) {
				assert.Equal(t, "Gods", account.Name)
				assert.True(t, account.Active)
				account.Created = created
				return &account, nil
			})

		account, err := svc.Create(context.Background(), "Gods", true)
		assert.NoError(t, err)
		assert.Equal(t, "Gods", account.Name)
		assert.True(t, account.Created.Equal(created))
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		mockReader.EXPECT().
			GetByName(gomock.Any(), "Gods").
			Return(&models.AccountDB{AccountID: uuid.New(), Name: "Gods"}, nil)

		_, err := svc.Create(context.Background(), "Gods", true)
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})
}

func TestAccountService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	svc := services.NewAccountService(mockReader, mockWriter)

	accountID := uuid.New()
	existing := &models.AccountDB{AccountID: accountID, Name: "Gods", Active: true}

	t.Run("deactivates without touching the name", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), accountID).Return(existing, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.AssignableToTypeOf(models.AccountDB{})).
			DoAndReturn(func(_ context.Context, account models.AccountDB) (int64, error) {
				assert.Equal(t, "Gods", account.Name)
				assert.False(t, account.Active)
				return 1, nil
			})

		active := false
		account, err := svc.Update(context.Background(), accountID, nil, &active)
		assert.NoError(t, err)
		assert.False(t, account.Active)
	})

	t.Run("rename to a taken name is rejected", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), accountID).Return(existing, nil)
		mockReader.EXPECT().
			GetByName(gomock.Any(), "Titans").
			Return(&models.AccountDB{AccountID: uuid.New(), Name: "Titans"}, nil)

		name := "Titans"
		_, err := svc.Update(context.Background(), accountID, &name, nil)
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), accountID).Return(nil, nil)

		_, err := svc.Update(context.Background(), accountID, nil, nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	svc := services.NewAccountService(mockReader, mockWriter)

	accountID := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), accountID).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(context.Background(), accountID))
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), accountID).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), accountID), services.ErrNotFound)
	})
}
