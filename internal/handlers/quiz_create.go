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

// QuizCreator defines the interface that the service must implement.
type QuizCreator interface {
	Create(ctx context.Context, title, description string, userID int64) (*models.QuizDB, error)
}

// CreateQuizRequest represents the JSON body for quiz creation.
// The userId field accepts any JSON number and must be an integer.
// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	// Title
	// required: true
	// example: Math
	Title string `json:"title"`

	// Description
	// required: true
	// example: Algebra basics
	Description string `json:"description"`

	// Owner user id
	// required: true
	// example: 1
	UserID json.Number `json:"userId"`
}

// CreateQuizResponse represents a successful quiz creation response
// swagger:model CreateQuizResponse
type CreateQuizResponse struct {
	// Success message
	// example: Quiz created successfully
	Message string `json:"message"`

	// Created quiz
	Quiz models.QuizDB `json:"quiz"`
}

// CreateQuizErrorResponse represents an error response for quiz creation
// swagger:model CreateQuizErrorResponse
type CreateQuizErrorResponse struct {
	// Error message
	// example: Title, description, and userId required
	Error string `json:"error"`
}

// NewCreateQuizHandler returns an HTTP handler for creating a quiz.
// @Summary Create a quiz
// @Description Creates a quiz owned by an existing user. The owner reference is validated by the store at write time.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param createQuizRequest body handlers.CreateQuizRequest true "Quiz creation request"
// @Success 201 {object} handlers.CreateQuizResponse "Quiz created"
// @Failure 400 {object} handlers.CreateQuizErrorResponse "Missing or invalid fields, or unknown owner"
// @Failure 500 {object} handlers.CreateQuizErrorResponse "Internal server error"
// @Router /api/quizzes [post]
func NewCreateQuizHandler(svc QuizCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuizRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateQuizErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.Title == "" || req.Description == "" || req.UserID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateQuizErrorResponse{
				Error: "Title, description, and userId required",
			})
			return
		}

		userID, err := req.UserID.Int64()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateQuizErrorResponse{
				Error: "userId must be a number",
			})
			return
		}

		quiz, err := svc.Create(r.Context(), req.Title, req.Description, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizOwnerNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Invalid userId. User does not exist.",
				})
			case errors.Is(err, services.ErrInvalidQuizInput):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Title, description, and userId required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateQuizErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateQuizResponse{
			Message: "Quiz created successfully",
			Quiz:    *quiz,
		})
	}
}
