package store

import (
	"context"

	"userboard/internal/model"

	"github.com/jmoiron/sqlx"
)

// SQLite 以 sqlx + mattn/go-sqlite3 實作 UserStore
type SQLite struct {
	db *sqlx.DB
}

func NewSQLite(db *sqlx.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) InsertUser(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO users (name) VALUES (?)`, name)
	if err != nil {
		return 0, unavailable("InsertUser", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, unavailable("InsertUser", err)
	}
	return id, nil
}

func (s *SQLite) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := s.db.SelectContext(ctx, &users, `SELECT id, name FROM users ORDER BY id`); err != nil {
		return nil, unavailable("ListUsers", err)
	}
	return users, nil
}

func (s *SQLite) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return unavailable("DeleteUser", err)
	}
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("Ping", err)
	}
	return nil
}
