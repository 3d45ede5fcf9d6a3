package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/treeseverywhere/api/internal/middlewares"
	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

func TestProfileCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	caller := &models.UserDB{UserID: userID, Username: "zeus", IsActive: true}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockProfileServicer)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"user_id":"` + userID.String() + `","about":"thunder and sky"}`,
			mockSetup: func(m *MockProfileServicer) {
				m.EXPECT().
					Create(gomock.Any(), caller, userID, "thunder and sky").
					Return(&models.ProfileView{About: "thunder and sky"}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "already exists",
			body: `{"user_id":"` + userID.String() + `","about":"x"}`,
			mockSetup: func(m *MockProfileServicer) {
				m.EXPECT().
					Create(gomock.Any(), caller, userID, "x").
					Return(nil, services.ErrAlreadyExists)
			},
			expectedCode: 400,
		},
		{
			name: "not the owner",
			body: `{"user_id":"` + userID.String() + `","about":"x"}`,
			mockSetup: func(m *MockProfileServicer) {
				m.EXPECT().
					Create(gomock.Any(), caller, userID, "x").
					Return(nil, services.ErrForbidden)
			},
			expectedCode: 403,
		},
		{
			name:         "missing user id",
			body:         `{"about":"x"}`,
			mockSetup:    func(m *MockProfileServicer) {},
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileServicer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/profiles/", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(middlewares.SetUserToContext(req.Context(), caller))
			rec := httptest.NewRecorder()

			NewProfileCreateHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestProfileGetHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSvc := NewMockProfileServicer(ctrl)
	mockSvc.EXPECT().
		Get(gomock.Any(), userID).
		Return(nil, services.ErrNotFound)

	r := chi.NewRouter()
	r.Get("/profiles/{id}/", NewProfileGetHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/profiles/"+userID.String()+"/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileGetHandler_OmitsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	row := &models.UserDB{
		UserID:       userID,
		Username:     "zeus",
		PasswordHash: "$2a$10$served-hash",
		IsActive:     true,
	}

	mockSvc := NewMockProfileServicer(ctrl)
	mockSvc.EXPECT().
		Get(gomock.Any(), userID).
		Return(&models.ProfileView{User: models.NewUserView(row, nil), About: "thunder"}, nil)

	r := chi.NewRouter()
	r.Get("/profiles/{id}/", NewProfileGetHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/profiles/"+userID.String()+"/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "served-hash")

	var body struct {
		User map[string]any `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "zeus", body.User["username"])
	assert.NotContains(t, body.User, "password")
	assert.NotContains(t, body.User, "password_hash")
}
