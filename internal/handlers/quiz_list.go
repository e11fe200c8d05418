package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/models"
)

// QuizLister defines the interface that the service must implement.
type QuizLister interface {
	List(ctx context.Context) ([]models.QuizDB, error)
}

// ListQuizzesErrorResponse represents an error response for listing quizzes
// swagger:model ListQuizzesErrorResponse
type ListQuizzesErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListQuizzesHandler returns an HTTP handler listing all quizzes.
// @Summary List quizzes
// @Description Returns all quizzes in storage order. An empty array when none exist.
// @Tags quizzes
// @Produce json
// @Success 200 {array} models.QuizDB "All quizzes"
// @Failure 500 {object} handlers.ListQuizzesErrorResponse "Internal server error"
// @Router /api/quizzes [get]
func NewListQuizzesHandler(svc QuizLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListQuizzesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if quizzes == nil {
			quizzes = []models.QuizDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(quizzes)
	}
}
