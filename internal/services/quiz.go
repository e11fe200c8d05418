package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/models"
	"github.com/sbilibin2017/quizo-backend/internal/repositories"
)

// Quiz error variables
var (
	ErrInvalidQuizInput  = errors.New("title and description are required")
	ErrQuizOwnerNotFound = errors.New("quiz owner does not exist")
	ErrQuizNotFound      = errors.New("quiz not found")
)

// QuizReader defines read-only operations for quizzes.
type QuizReader interface {
	List(ctx context.Context) ([]models.QuizDB, error)
	GetByID(ctx context.Context, id int64) (*models.QuizDB, error)
}

// QuizWriter defines write operations for quizzes.
type QuizWriter interface {
	Save(ctx context.Context, title, description string, userID int64) (*models.QuizDB, error)
	Update(ctx context.Context, id int64, title, description string) (*models.QuizDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EventWriter defines a Kafka writer abstraction for quiz lifecycle events.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// QuizService handles quiz CRUD and event publishing.
type QuizService struct {
	reader QuizReader
	writer QuizWriter
	events EventWriter
}

// NewQuizService creates a new QuizService. A nil events writer
// disables publishing.
func NewQuizService(reader QuizReader, writer QuizWriter, events EventWriter) *QuizService {
	return &QuizService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// publishEvent publishes a quiz lifecycle event. Failures are logged
// and never surface to the caller.
func (svc *QuizService) publishEvent(ctx context.Context, eventType string, quiz *models.QuizDB) {
	if svc.events == nil {
		return
	}

	event := models.QuizEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		QuizID:    quiz.ID,
		OwnerID:   quiz.UserID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal quiz event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish quiz event", "event_id", event.EventID, "error", err)
		return
	}

	logger.Log.Infow("quiz event published", "event_id", event.EventID, "type", eventType, "quiz_id", quiz.ID)
}

// Create persists a new quiz owned by userID. The owner reference is
// enforced by the foreign key at write time; an unknown owner comes
// back as ErrQuizOwnerNotFound.
func (svc *QuizService) Create(ctx context.Context, title, description string, userID int64) (*models.QuizDB, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, ErrInvalidQuizInput
	}

	quiz, err := svc.writer.Save(ctx, title, description, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			logger.Log.Infow("quiz owner does not exist", "user_id", userID)
			return nil, ErrQuizOwnerNotFound
		}
		logger.Log.Errorw("failed to save quiz", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.QuizCreated, quiz)

	return quiz, nil
}

// List returns all quizzes in storage order.
func (svc *QuizService) List(ctx context.Context) ([]models.QuizDB, error) {
	quizzes, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list quizzes", "err", err)
		return nil, err
	}
	return quizzes, nil
}

// Get returns a single quiz by id.
func (svc *QuizService) Get(ctx context.Context, id int64) (*models.QuizDB, error) {
	quiz, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get quiz", "id", id, "err", err)
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

// Update applies the supplied fields to an existing quiz; nil fields
// keep their current value. The owner cannot be changed. Last write
// wins, there is no concurrency check.
func (svc *QuizService) Update(ctx context.Context, id int64, title, description *string) (*models.QuizDB, error) {
	current, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get quiz for update", "id", id, "err", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrQuizNotFound
	}

	newTitle := current.Title
	if title != nil {
		newTitle = *title
	}
	newDescription := current.Description
	if description != nil {
		newDescription = *description
	}

	quiz, err := svc.writer.Update(ctx, id, newTitle, newDescription)
	if err != nil {
		logger.Log.Errorw("failed to update quiz", "id", id, "err", err)
		return nil, err
	}
	if quiz == nil {
		// Deleted between the read and the write.
		return nil, ErrQuizNotFound
	}

	svc.publishEvent(ctx, models.QuizUpdated, quiz)

	return quiz, nil
}

// Delete removes a quiz permanently.
func (svc *QuizService) Delete(ctx context.Context, id int64) error {
	quiz, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get quiz for delete", "id", id, "err", err)
		return err
	}
	if quiz == nil {
		return ErrQuizNotFound
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete quiz", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrQuizNotFound
	}

	svc.publishEvent(ctx, models.QuizDeleted, quiz)

	return nil
}
