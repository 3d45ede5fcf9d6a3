package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/treeseverywhere/api/internal/models"
	"github.com/treeseverywhere/api/internal/services"
)

func TestAccountListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountServicer(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any()).
		Return([]models.AccountDB{{AccountID: uuid.New(), Name: "Gods"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	rec := httptest.NewRecorder()

	NewAccountListHandler(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.AccountDB
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Gods", got[0].Name)
}

func TestAccountGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockAccountServicer)
		expectedCode int
	}{
		{
			name: "found",
			url:  "/accounts/" + accountID.String() + "/",
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Get(gomock.Any(), accountID).
					Return(&models.AccountDB{AccountID: accountID, Name: "Gods"}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			url:  "/accounts/" + accountID.String() + "/",
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Get(gomock.Any(), accountID).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "bad id",
			url:          "/accounts/not-a-uuid/",
			mockSetup:    func(m *MockAccountServicer) {},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAccountServicer(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/accounts/{id}/", NewAccountGetHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAccountCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAccountServicer)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"name":"Gods"}`,
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Create(gomock.Any(), "Gods", true).
					Return(&models.AccountDB{AccountID: uuid.New(), Name: "Gods", Active: true}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "explicit inactive",
			body: `{"name":"Titans","active":false}`,
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Create(gomock.Any(), "Titans", false).
					Return(&models.AccountDB{AccountID: uuid.New(), Name: "Titans"}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "duplicate name",
			body: `{"name":"Gods"}`,
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Create(gomock.Any(), "Gods", true).
					Return(nil, services.ErrAlreadyExists)
			},
			expectedCode: 400,
		},
		{
			name:         "missing name",
			body:         `{}`,
			mockSetup:    func(m *MockAccountServicer) {},
			expectedCode: 400,
		},
		{
			name: "internal error",
			body: `{"name":"Gods"}`,
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Create(gomock.Any(), "Gods", true).
					Return(nil, errors.New("db down"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAccountServicer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/accounts/", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()

			NewAccountCreateHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAccountUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	name := "Olympians"

	mockSvc := NewMockAccountServicer(ctrl)
	mockSvc.EXPECT().
		Update(gomock.Any(), accountID, &name, nil).
		Return(&models.AccountDB{AccountID: accountID, Name: name}, nil)

	r := chi.NewRouter()
	r.Patch("/accounts/{id}/", NewAccountUpdateHandler(mockSvc))

	req := httptest.NewRequest(http.MethodPatch, "/accounts/"+accountID.String()+"/", bytes.NewReader([]byte(`{"name":"Olympians"}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockAccountServicer)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Delete(gomock.Any(), accountID).
					Return(nil)
			},
			expectedCode: 204,
		},
		{
			name: "not found",
			mockSetup: func(m *MockAccountServicer) {
				m.EXPECT().
					Delete(gomock.Any(), accountID).
					Return(services.ErrNotFound)
			},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAccountServicer(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/accounts/{id}/", NewAccountDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/accounts/"+accountID.String()+"/", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
