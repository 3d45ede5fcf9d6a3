package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		authHeader   string
		mockSetup    func(m *MockLogouter)
		expectedCode int
	}{
		{
			name:       "success",
			authHeader: "Bearer token-123",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().
					Logout(gomock.Any(), "token-123").
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:         "missing token",
			authHeader:   "",
			mockSetup:    func(m *MockLogouter) {},
			expectedCode: 401,
		},
		{
			name:       "internal error",
			authHeader: "Bearer token-123",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().
					Logout(gomock.Any(), "token-123").
					Return(errors.New("redis down"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLogoutHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
