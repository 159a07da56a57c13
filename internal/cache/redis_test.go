package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient implements redisClient for testing.
type stubClient struct {
	pingErr error
	closed  bool
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (s *stubClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(1, nil)
}

func (s *stubClient) Close() error { s.closed = true; return nil }

func restoreRedisNewClient() {
	redisNewClient = func(o *redis.Options) redisClient { return redis.NewClient(o) }
}

func TestNewRedisClient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Cleanup(restoreRedisNewClient)
		var opts *redis.Options
		stub := &stubClient{}
		redisNewClient = func(o *redis.Options) redisClient {
			opts = o
			return stub
		}

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Equal(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
		require.False(t, stub.closed)
	})

	t.Run("ping fail closes client", func(t *testing.T) {
		t.Cleanup(restoreRedisNewClient)
		stub := &stubClient{pingErr: errors.New("fail")}
		redisNewClient = func(o *redis.Options) redisClient { return stub }

		c, err := NewRedisClient("addr", "", 0)
		require.Error(t, err)
		require.Nil(t, c)
		require.True(t, stub.closed)
	})
}
