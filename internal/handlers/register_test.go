package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/quizo-backend/internal/models"
	"github.com/sbilibin2017/quizo-backend/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123").
					Return(&models.UserDB{ID: 1, Username: "alice", PasswordHash: "hash"}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"message": "User registered successfully",
				"user":    map[string]any{"id": float64(1), "username": "alice"},
			},
		},
		{
			name:         "missing username",
			body:         `{"password":"secret123"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Username and password are required"},
		},
		{
			name:         "missing password",
			body:         `{"username":"alice"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Username and password are required"},
		},
		{
			name: "username taken",
			body: `{"username":"alice","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Username already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)

			// The password hash must never appear in a response.
			assert.NotContains(t, rr.Body.String(), "hash")
		})
	}
}
