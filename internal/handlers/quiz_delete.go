package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/services"
)

// QuizDeleter defines the interface that the service must implement.
type QuizDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteQuizResponse represents a successful quiz deletion response
// swagger:model DeleteQuizResponse
type DeleteQuizResponse struct {
	// Success message
	// example: Quiz deleted successfully
	Message string `json:"message"`
}

// DeleteQuizErrorResponse represents an error response for quiz deletion
// swagger:model DeleteQuizErrorResponse
type DeleteQuizErrorResponse struct {
	// Error message
	// example: Quiz not found
	Error string `json:"error"`
}

// NewDeleteQuizHandler returns an HTTP handler for deleting a quiz.
// @Summary Delete a quiz
// @Description Removes the quiz with the given id permanently
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} handlers.DeleteQuizResponse "Quiz deleted"
// @Failure 400 {object} handlers.DeleteQuizErrorResponse "Invalid quiz id"
// @Failure 404 {object} handlers.DeleteQuizErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.DeleteQuizErrorResponse "Internal server error"
// @Router /api/quizzes/{id} [delete]
func NewDeleteQuizHandler(svc QuizDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseQuizID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteQuizErrorResponse{
				Error: "Invalid quiz id",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrQuizNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteQuizErrorResponse{
					Error: "Quiz not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteQuizErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteQuizResponse{
			Message: "Quiz deleted successfully",
		})
	}
}
