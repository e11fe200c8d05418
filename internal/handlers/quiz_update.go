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

// QuizUpdater defines the interface that the service must implement.
type QuizUpdater interface {
	Update(ctx context.Context, id int64, title, description *string) (*models.QuizDB, error)
}

// UpdateQuizRequest represents the JSON body for a partial quiz update.
// Absent fields keep their current value; the owner cannot be changed.
// swagger:model UpdateQuizRequest
type UpdateQuizRequest struct {
	// Title
	// example: Math II
	Title *string `json:"title"`

	// Description
	// example: Algebra basics
	Description *string `json:"description"`
}

// UpdateQuizResponse represents a successful quiz update response
// swagger:model UpdateQuizResponse
type UpdateQuizResponse struct {
	// Success message
	// example: Quiz updated successfully
	Message string `json:"message"`

	// Updated quiz
	UpdatedQuiz models.QuizDB `json:"updatedQuiz"`
}

// UpdateQuizErrorResponse represents an error response for quiz update
// swagger:model UpdateQuizErrorResponse
type UpdateQuizErrorResponse struct {
	// Error message
	// example: Quiz not found
	Error string `json:"error"`
}

// NewUpdateQuizHandler returns an HTTP handler for updating a quiz.
// @Summary Update a quiz
// @Description Applies the supplied title/description to an existing quiz. Unset fields keep their current value.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param updateQuizRequest body handlers.UpdateQuizRequest true "Quiz update request"
// @Success 200 {object} handlers.UpdateQuizResponse "Quiz updated"
// @Failure 400 {object} handlers.UpdateQuizErrorResponse "Invalid quiz id or body"
// @Failure 404 {object} handlers.UpdateQuizErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.UpdateQuizErrorResponse "Internal server error"
// @Router /api/quizzes/{id} [put]
func NewUpdateQuizHandler(svc QuizUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseQuizID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
				Error: "Invalid quiz id",
			})
			return
		}

		var req UpdateQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		quiz, err := svc.Update(r.Context(), id, req.Title, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
					Error: "Quiz not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateQuizErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateQuizResponse{
			Message:     "Quiz updated successfully",
			UpdatedQuiz: *quiz,
		})
	}
}
