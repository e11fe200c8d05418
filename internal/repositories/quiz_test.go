package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupQuizPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS quizzes (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		user_id BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertQuizOwner(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id,
		"INSERT INTO users (username, password_hash) VALUES ($1, 'hash') RETURNING id",
		username)
	assert.NoError(t, err)
	return id
}

func TestQuizWriteRepository_Save(t *testing.T) {
	db, teardown := setupQuizPostgresContainer(t)
	defer teardown()

	repo := NewQuizWriteRepository(db)
	ctx := context.Background()

	ownerID := insertQuizOwner(t, db, "alice")

	t.Run("insert assigns id and keeps owner", func(t *testing.T) {
		quiz, err := repo.Save(ctx, "Math", "Algebra basics", ownerID)
		assert.NoError(t, err)
		assert.NotNil(t, quiz)
		assert.NotZero(t, quiz.ID)
		assert.Equal(t, "Math", quiz.Title)
		assert.Equal(t, "Algebra basics", quiz.Description)
		assert.Equal(t, ownerID, quiz.UserID)
	})

	t.Run("unknown owner maps to ErrForeignKeyViolation", func(t *testing.T) {
		quiz, err := repo.Save(ctx, "Orphan", "No such owner", ownerID+9000)
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
		assert.Nil(t, quiz)
	})
}

func TestQuizReadRepository(t *testing.T) {
	db, teardown := setupQuizPostgresContainer(t)
	defer teardown()

	writeRepo := NewQuizWriteRepository(db)
	readRepo := NewQuizReadRepository(db)
	ctx := context.Background()

	t.Run("empty list is an empty slice", func(t *testing.T) {
		quizzes, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, quizzes)
		assert.Empty(t, quizzes)
	})

	ownerID := insertQuizOwner(t, db, "bob")
	first, err := writeRepo.Save(ctx, "Math", "Algebra basics", ownerID)
	assert.NoError(t, err)
	second, err := writeRepo.Save(ctx, "History", "Antiquity", ownerID)
	assert.NoError(t, err)

	t.Run("list preserves insertion order", func(t *testing.T) {
		quizzes, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, quizzes, 2)
		assert.Equal(t, first.ID, quizzes[0].ID)
		assert.Equal(t, second.ID, quizzes[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		quiz, err := readRepo.GetByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.NotNil(t, quiz)
		assert.Equal(t, "Math", quiz.Title)
	})

	t.Run("get missing id returns nil without error", func(t *testing.T) {
		quiz, err := readRepo.GetByID(ctx, first.ID+9000)
		assert.NoError(t, err)
		assert.Nil(t, quiz)
	})
}

func TestQuizWriteRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupQuizPostgresContainer(t)
	defer teardown()

	repo := NewQuizWriteRepository(db)
	ctx := context.Background()

	ownerID := insertQuizOwner(t, db, "carol")
	quiz, err := repo.Save(ctx, "Math", "Algebra basics", ownerID)
	assert.NoError(t, err)

	t.Run("update rewrites title and description only", func(t *testing.T) {
		updated, err := repo.Update(ctx, quiz.ID, "Math II", "Linear algebra")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Math II", updated.Title)
		assert.Equal(t, "Linear algebra", updated.Description)
		assert.Equal(t, ownerID, updated.UserID)
	})

	t.Run("update missing id returns nil without error", func(t *testing.T) {
		updated, err := repo.Update(ctx, quiz.ID+9000, "x", "y")
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete reports whether a row existed", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, quiz.ID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, quiz.ID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestUserWriteRepository_DuplicateUsername(t *testing.T) {
	db, teardown := setupQuizPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Save(ctx, "dave", "hash1")
	assert.NoError(t, err)
	assert.NotNil(t, user)

	dup, err := repo.Save(ctx, "dave", "hash2")
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.Nil(t, dup)
}
