package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/models"
)

// QuizReadRepository reads quiz records.
type QuizReadRepository struct {
	db *sqlx.DB
}

func NewQuizReadRepository(db *sqlx.DB) *QuizReadRepository {
	return &QuizReadRepository{db: db}
}

// List returns all quizzes in insertion order. Returns an empty slice,
// never nil, when there are no quizzes.
func (r *QuizReadRepository) List(ctx context.Context) ([]models.QuizDB, error) {
	const query = `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM quizzes
		ORDER BY id
	`

	quizzes := make([]models.QuizDB, 0)
	err := r.db.SelectContext(ctx, &quizzes, query)

	logger.Log.Infow("quiz list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(quizzes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return quizzes, nil
}

// GetByID fetches a quiz by id. Returns (nil, nil) when no quiz has that id.
func (r *QuizReadRepository) GetByID(ctx context.Context, id int64) (*models.QuizDB, error) {
	const query = `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM quizzes
		WHERE id = $1
	`

	var quiz models.QuizDB
	err := r.db.GetContext(ctx, &quiz, query, id)

	logger.Log.Infow("quiz select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

// QuizWriteRepository writes quiz records.
type QuizWriteRepository struct {
	db *sqlx.DB
}

func NewQuizWriteRepository(db *sqlx.DB) *QuizWriteRepository {
	return &QuizWriteRepository{db: db}
}

// Save inserts a new quiz and returns the stored record with its
// assigned id. An unknown owner surfaces as ErrForeignKeyViolation;
// the FK constraint rejects it at write time, so there is no window
// between an existence check and the insert.
func (r *QuizWriteRepository) Save(ctx context.Context, title, description string, userID int64) (*models.QuizDB, error) {
	const query = `
		INSERT INTO quizzes (title, description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, title, description, user_id, created_at, updated_at
	`

	var quiz models.QuizDB
	err := r.db.GetContext(ctx, &quiz, query, title, description, userID)

	logger.Log.Infow("quiz insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, description, userID},
		"error", err,
	)

	if err != nil {
		return nil, translateConstraintError(err)
	}

	return &quiz, nil
}

// Update overwrites title and description of an existing quiz.
// Returns (nil, nil) when no quiz has that id. The owner column is
// deliberately not part of the statement.
func (r *QuizWriteRepository) Update(ctx context.Context, id int64, title, description string) (*models.QuizDB, error) {
	const query = `
		UPDATE quizzes
		SET title = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, user_id, created_at, updated_at
	`

	var quiz models.QuizDB
	err := r.db.GetContext(ctx, &quiz, query, id, title, description)

	logger.Log.Infow("quiz update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, title, description},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &quiz, nil
}

// Delete removes a quiz permanently. Returns false when no quiz had that id.
func (r *QuizWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM quizzes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("quiz delete",
		"query", query,
		"args", []any{id},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
