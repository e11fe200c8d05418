package models

// Quiz event types published to the event stream.
const (
	QuizCreated = "quiz.created"
	QuizUpdated = "quiz.updated"
	QuizDeleted = "quiz.deleted"
)

// QuizEvent is the message published to Kafka on quiz lifecycle changes.
type QuizEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	QuizID    int64  `json:"quiz_id"`
	OwnerID   int64  `json:"owner_id"`
	Timestamp int64  `json:"timestamp"`
}
