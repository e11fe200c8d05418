package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/models"
	"github.com/sbilibin2017/quizo-backend/internal/repositories"
)

// Auth error variables
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// dummyHash is compared against when the username is unknown so that
// login takes the same time whether the user exists or not.
var dummyHash []byte

func init() {
	dummyHash, _ = bcrypt.GenerateFromPassword([]byte("quizo.dummy"), bcrypt.DefaultCost)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// SessionCreator establishes a session for a logged-in user.
type SessionCreator interface {
	Create(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionCreator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionCreator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
	}
}

// Register creates a new user with a bcrypt-hashed password.
// The username uniqueness check is the database unique index; a
// duplicate insert comes back as ErrUsernameTaken.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashed))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("username already taken", "username", username)
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and establishes a session, returning the
// user and the opaque session token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		// Burn a hash comparison anyway to keep timing uniform.
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		logger.Log.Infow("login failed", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to create session", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}
