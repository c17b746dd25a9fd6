package store

import (
	"context"

	"userboard/internal/database"
	"userboard/internal/model"
)

// Postgres 以 pgx 實作 UserStore
type Postgres struct {
	db database.DB
}

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) InsertUser(ctx context.Context, name string) (int64, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (name)
		 VALUES ($1)
		 RETURNING id`,
		name,
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, unavailable("InsertUser", err)
	}
	return id, nil
}

func (s *Postgres) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, unavailable("ListUsers", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, unavailable("ListUsers", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("ListUsers", err)
	}
	return users, nil
}

func (s *Postgres) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return unavailable("DeleteUser", err)
	}
	return nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return unavailable("Ping", err)
	}
	return nil
}
