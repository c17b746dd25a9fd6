package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var (
	sqlxOpen             = sqlx.Open
	sqliteWithInstanceFn = sqlite3.WithInstance
)

// OpenSQLite 開啟（或建立）SQLite 資料庫並確認連線
// dsn 可為檔案路徑或 file: URI，例如 file:users?mode=memory&cache=shared
func OpenSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlxOpen("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	return db, nil
}

// RunSQLiteMigrations 對既有連線執行嵌入的 sqlite migrations (up all)
// 不關閉 migrate，否則底層 *sql.DB 會一併被關閉
func RunSQLiteMigrations(db *sql.DB) error {
	driver, err := sqliteWithInstanceFn(db, &sqlite3.Config{})
	if err != nil {
		return err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations/sqlite")
	if err != nil {
		return err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
