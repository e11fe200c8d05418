package sessions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
)

// RedisStore keeps sessions in Redis so multiple instances can share them.
type RedisStore struct {
	client *redis.Client
	exp    time.Duration // session TTL
}

// NewRedisStore creates a Redis-backed session store with the given TTL.
func NewRedisStore(client *redis.Client, expiration time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create generates an opaque token bound to userID and stores it with the TTL.
func (s *RedisStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	key := sessionKey(token)

	err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), s.exp).Err()

	logger.Log.Infow("session create",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token back to a user id.
func (s *RedisStore) Lookup(ctx context.Context, token string) (int64, error) {
	key := sessionKey(token)

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrSessionNotFound
		}
		logger.Log.Errorw("session lookup failed", "key", key, "error", err)
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("corrupt session value", "key", key, "value", val, "error", err)
		return 0, ErrSessionNotFound
	}

	return userID, nil
}
