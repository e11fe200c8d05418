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

func TestCreateQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockQuizCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"title":"Math","description":"Algebra basics","userId":1}`,
			mockSetup: func(m *MockQuizCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Math", "Algebra basics", int64(1)).
					Return(&models.QuizDB{ID: 1, Title: "Math", Description: "Algebra basics", UserID: 1}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"message": "Quiz created successfully",
				"quiz": map[string]any{
					"id": float64(1), "title": "Math", "description": "Algebra basics", "userId": float64(1),
				},
			},
		},
		{
			name:         "missing title",
			body:         `{"description":"Algebra basics","userId":1}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Title, description, and userId required"},
		},
		{
			name:         "missing userId",
			body:         `{"title":"Math","description":"Algebra basics"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Title, description, and userId required"},
		},
		{
			name:         "non-integer userId",
			body:         `{"title":"Math","description":"Algebra basics","userId":1.5}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "userId must be a number"},
		},
		{
			name: "unknown owner",
			body: `{"title":"Math","description":"Algebra basics","userId":999}`,
			mockSetup: func(m *MockQuizCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Math", "Algebra basics", int64(999)).
					Return(nil, services.ErrQuizOwnerNotFound)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid userId. User does not exist."},
		},
		{
			name: "internal server error",
			body: `{"title":"Math","description":"Algebra basics","userId":1}`,
			mockSetup: func(m *MockQuizCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Math", "Algebra basics", int64(1)).
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
			mockSvc := NewMockQuizCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateQuizHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
