package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.NoError(t, c.Close())

	called := map[string]bool{}
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		called["get"] = true
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		called["set"] = true
		return redis.NewStatusResult("OK", nil)
	}
	c.IncrFn = func(context.Context, string) *redis.IntCmd {
		called["incr"] = true
		return redis.NewIntResult(3, nil)
	}
	c.CloseFn = func() error { called["close"] = true; return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.Equal(t, int64(3), c.Incr(ctx, "gen").Val())
	require.EqualError(t, c.Close(), "close")
	for _, k := range []string{"get", "set", "incr", "close"} {
		require.True(t, called[k], k)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := MemoryCache()

	err := c.Get(ctx, "users:all:0").Err()
	require.ErrorIs(t, err, redis.Nil)

	require.NoError(t, c.Set(ctx, "users:all:0", []byte(`[]`), time.Minute).Err())
	require.Equal(t, "[]", c.Get(ctx, "users:all:0").Val())

	require.Equal(t, int64(1), c.Incr(ctx, "users:gen").Val())
	require.Equal(t, int64(2), c.Incr(ctx, "users:gen").Val())
	gen, err := c.Get(ctx, "users:gen").Int64()
	require.NoError(t, err)
	require.Equal(t, int64(2), gen)

	require.Error(t, c.Incr(ctx, "users:all:0").Err(), "non-integer value")
}
