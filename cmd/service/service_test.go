package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"userboard/internal/cache"
	"userboard/internal/config"
	"userboard/internal/database"
)

var memDBSeq atomic.Int64

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	openSQLite = database.OpenSQLite
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	runSQLiteMigrationsFn = database.RunSQLiteMigrations
	startServer = serve
	exitFunc = func(code int) {}
}

func memSQLiteURL() string {
	return fmt.Sprintf("file:service_%d?mode=memory&cache=shared", memDBSeq.Add(1))
}

func TestRunSQLiteEndToEnd(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("DATABASE_URL", memSQLiteURL())
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HTTP_ADDR", ":9999")

	var served bool
	startServer = func(ctx context.Context, e *echo.Echo, addr string) error {
		served = true
		require.Equal(t, ":9999", addr)

		form := url.Values{"name": {"Alice"}}
		req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusFound, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Alice")

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return nil
	}

	require.NoError(t, run(context.Background()))
	require.True(t, served)
}

func TestRunPostgresWithCache(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://u:p@db/app", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(_ context.Context, cfg config.Config) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", cfg.RedisAddr)
		require.Equal(t, "pw", cfg.RedisPassword)
		require.Equal(t, 1, cfg.RedisDB)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(ctx context.Context, e *echo.Echo, addr string) error { called["start"] = true; return nil }

	t.Setenv("DATABASE_URL", "postgres://u:p@db/app")
	t.Setenv("REDIS_ADDR", "127")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")

	require.NoError(t, run(context.Background()))
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("REDIS_ADDR", "")

	t.Setenv("DATABASE_URL", "")
	require.Error(t, run(context.Background()))

	t.Setenv("DATABASE_URL", "mysql://nope")
	require.ErrorIs(t, run(context.Background()), database.ErrUnsupportedURL)

	t.Setenv("DATABASE_URL", "postgres://db")
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run(context.Background()))

	closed := false
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() { closed = true }}, nil
	}
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run(context.Background()))
	require.True(t, closed)

	runMigrationsFn = func(string) error { return nil }
	t.Setenv("REDIS_ADDR", "addr")
	newRedisClient = func(context.Context, config.Config) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run(context.Background()))

	t.Setenv("REDIS_ADDR", "")
	startServer = func(context.Context, *echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run(context.Background()))
}

func TestRunSQLiteErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DATABASE_URL", "sqlite://"+memSQLiteURL())

	openSQLite = func(context.Context, string) (*sqlx.DB, error) { return nil, errors.New("open") }
	require.Error(t, run(context.Background()))

	openSQLite = database.OpenSQLite
	runSQLiteMigrationsFn = func(*sql.DB) error { return errors.New("migrate") }
	require.ErrorContains(t, run(context.Background()), "migrate")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, e, "127.0.0.1:0") }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeReturnsStartError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	require.Error(t, serve(context.Background(), e, "bad-addr"))
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	startServer = func(context.Context, *echo.Echo, string) error { return nil }
	t.Setenv("DATABASE_URL", memSQLiteURL())
	t.Setenv("REDIS_ADDR", "")
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	t.Setenv("DATABASE_URL", "postgres://d")
	t.Setenv("REDIS_ADDR", "")
	main()
	require.Equal(t, 1, exitCode)
}
