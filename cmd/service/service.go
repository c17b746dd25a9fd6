// @title        Userboard
// @version      1.0
// @description  使用者列表、新增與刪除的伺服器端渲染頁面
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userboard/internal/cache"
	"userboard/internal/config"
	"userboard/internal/database"
	"userboard/internal/router"
	"userboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	_ "userboard/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig            = config.Load
	newPgxPool            = database.NewPgxPool
	openSQLite            = database.OpenSQLite
	newRedisClient        = cache.NewRedisClient
	runMigrationsFn       = database.RunMigrations
	runSQLiteMigrationsFn = database.RunSQLiteMigrations
	startServer           = serve
	exitFunc              = os.Exit
)

// serve 啟動 HTTP server，ctx 結束時優雅關閉
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

// openStore 依 DATABASE_URL 的 scheme 選擇後端並執行 migrations
// 回傳的 close 負責釋放連線
func openStore(ctx context.Context, dbURL string) (store.UserStore, func(), error) {
	backend, dsn, err := database.ParseURL(dbURL)
	if err != nil {
		return nil, nil, err
	}

	switch backend {
	case database.BackendPostgres:
		db, err := newPgxPool(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("DB 連線失敗: %w", err)
		}
		if err := runMigrationsFn(dsn); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("Migration 執行失敗: %w", err)
		}
		return store.NewPostgres(db), db.Close, nil
	default:
		db, err := openSQLite(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("DB 連線失敗: %w", err)
		}
		if err := runSQLiteMigrationsFn(db.DB); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("Migration 執行失敗: %w", err)
		}
		return store.NewSQLite(db), func() { _ = db.Close() }, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DEBUG)
	}
	log.Infof("starting with %s", cfg)

	s, closeStore, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	var cch cache.Cache
	if cfg.CacheEnabled() {
		cch, err = newRedisClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer cch.Close()
		s = store.NewCached(s, cch, cfg.CacheTTL)
	} else {
		log.Info("REDIS_ADDR 未設定，停用使用者列表快取")
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, s, cch)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(ctx, e, cfg.HTTPAddr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error(err)
		exitFunc(1)
	}
}
