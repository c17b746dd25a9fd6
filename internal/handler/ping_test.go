package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userboard/internal/cache"
	"userboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	serve := func(db Pinger, cch cache.Cache) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db, cch)(e.NewContext(req, rec)))
		return rec
	}

	t.Run("db unhealthy", func(t *testing.T) {
		db := &store.FakeStore{PingFn: func(context.Context) error { return errors.New("fail") }}
		rec := serve(db, &cache.FakeCache{})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		dbCalled := false
		db := &store.FakeStore{PingFn: func(context.Context) error { dbCalled = true; return nil }}
		cch := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		rec := serve(db, cch)
		require.True(t, dbCalled)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		cacheCalled := false
		db := &store.FakeStore{PingFn: func(context.Context) error { return nil }}
		cch := &cache.FakeCache{SetFn: func(_ context.Context, key string, _ any, _ time.Duration) *redis.StatusCmd {
			cacheCalled = true
			require.Equal(t, pingKey, key)
			return redis.NewStatusResult("OK", nil)
		}}
		rec := serve(db, cch)
		require.True(t, cacheCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})

	t.Run("ok without cache", func(t *testing.T) {
		db := &store.FakeStore{PingFn: func(context.Context) error { return nil }}
		rec := serve(db, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
