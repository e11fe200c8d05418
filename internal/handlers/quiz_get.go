package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/models"
	"github.com/sbilibin2017/quizo-backend/internal/services"
)

// QuizGetter defines the interface that the service must implement.
type QuizGetter interface {
	Get(ctx context.Context, id int64) (*models.QuizDB, error)
}

// GetQuizErrorResponse represents an error response for fetching a quiz
// swagger:model GetQuizErrorResponse
type GetQuizErrorResponse struct {
	// Error message
	// example: Quiz not found
	Error string `json:"error"`
}

// NewGetQuizHandler returns an HTTP handler fetching a single quiz by id.
// @Summary Get a quiz
// @Description Returns the quiz with the given id
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} models.QuizDB "Quiz"
// @Failure 400 {object} handlers.GetQuizErrorResponse "Invalid quiz id"
// @Failure 404 {object} handlers.GetQuizErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.GetQuizErrorResponse "Internal server error"
// @Router /api/quizzes/{id} [get]
func NewGetQuizHandler(svc QuizGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseQuizID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetQuizErrorResponse{
				Error: "Invalid quiz id",
			})
			return
		}

		quiz, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetQuizErrorResponse{
					Error: "Quiz not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetQuizErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(quiz)
	}
}
