package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/quizo-backend/internal/models"
	"github.com/sbilibin2017/quizo-backend/internal/services"
)

func TestGetQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockQuizGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			path: "/api/quizzes/1",
			mockSetup: func(m *MockQuizGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&models.QuizDB{ID: 1, Title: "Math", Description: "Algebra basics", UserID: 1}, nil)
			},
			expectedCode: 200,
			expectedBody: `{"id":1,"title":"Math","description":"Algebra basics","userId":1}`,
		},
		{
			name: "not found",
			path: "/api/quizzes/99",
			mockSetup: func(m *MockQuizGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(99)).
					Return(nil, services.ErrQuizNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"error":"Quiz not found"}`,
		},
		{
			name:         "invalid id",
			path:         "/api/quizzes/abc",
			expectedCode: 400,
			expectedBody: `{"error":"Invalid quiz id"}`,
		},
		{
			name: "internal server error",
			path: "/api/quizzes/1",
			mockSetup: func(m *MockQuizGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuizGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/api/quizzes/{id}", NewGetQuizHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

// The round-trip view: what Get returns must serialize exactly the
// fields the client knows about, nothing more.
func TestGetQuizHandler_SerializesOnlyPublicFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuizGetter(ctrl)
	mockSvc.EXPECT().
		Get(gomock.Any(), int64(1)).
		Return(&models.QuizDB{ID: 1, Title: "Math", Description: "Algebra basics", UserID: 1}, nil)

	r := chi.NewRouter()
	r.Get("/api/quizzes/{id}", NewGetQuizHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"id", "title", "description", "userId"}, keys(resp))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
