package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			username:     "zeus",
			password:     "pass123",
			existingUser: nil,
			wantErr:      nil,
		},
		{
			name:         "user already exists",
			username:     "hera",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "ares",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "apollo",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.AssignableToTypeOf(models.UserDB{})).
					DoAndReturn(func(_ context.Context, user models.UserDB) (*models.UserDB, error) {
						assert.Equal(t, tt.username, user.Username)
						assert.True(t, user.IsActive)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &user, nil
					})
			}

			err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:       userID,
		Username:     "zeus",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	t.Run("successful login", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "zeus").Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), userID).Return("token-123", nil)

		token, err := svc.Login(context.Background(), "zeus", "pass123")
		assert.NoError(t, err)
		assert.Equal(t, "token-123", token)
	})

	t.Run("user does not exist", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

		_, err := svc.Login(context.Background(), "nobody", "pass123")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "zeus").Return(user, nil)

		_, err := svc.Login(context.Background(), "zeus", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("jwt generation fails", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "zeus").Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("sign error"))

		_, err := svc.Login(context.Background(), "zeus", "pass123")
		assert.EqualError(t, err, "sign error")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	t.Run("revokes the token", func(t *testing.T) {
		mockRevoker.EXPECT().Revoke(gomock.Any(), "token-123").Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "token-123"))
	})

	t.Run("revocation failure is returned", func(t *testing.T) {
		mockRevoker.EXPECT().Revoke(gomock.Any(), "token-123").Return(errors.New("redis down"))

		assert.Error(t, svc.Logout(context.Background(), "token-123"))
	})
}
