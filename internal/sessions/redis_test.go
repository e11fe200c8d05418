package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	store := NewRedisStore(rdb, 2*time.Second)

	t.Run("Create and Lookup", func(t *testing.T) {
		token, err := store.Create(ctx, 7)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := store.Lookup(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("Lookup unknown token", func(t *testing.T) {
		_, err := store.Lookup(ctx, "no-such-token")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Session expires", func(t *testing.T) {
		token, err := store.Create(ctx, 8)
		assert.NoError(t, err)

		// Wait for expiration (2s TTL)
		time.Sleep(3 * time.Second)

		_, err = store.Lookup(ctx, token)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
