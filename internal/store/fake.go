package store

import (
	"context"

	"userboard/internal/model"
)

// FakeStore 以函式欄位實作 UserStore，未設定的方法會 panic
type FakeStore struct {
	InsertUserFn func(ctx context.Context, name string) (int64, error)
	ListUsersFn  func(ctx context.Context) ([]model.User, error)
	DeleteUserFn func(ctx context.Context, id int64) error
	PingFn       func(ctx context.Context) error
}

func (f *FakeStore) InsertUser(ctx context.Context, name string) (int64, error) {
	if f.InsertUserFn != nil {
		return f.InsertUserFn(ctx, name)
	}
	panic("unexpected InsertUser")
}

func (f *FakeStore) ListUsers(ctx context.Context) ([]model.User, error) {
	if f.ListUsersFn != nil {
		return f.ListUsersFn(ctx)
	}
	panic("unexpected ListUsers")
}

func (f *FakeStore) DeleteUser(ctx context.Context, id int64) error {
	if f.DeleteUserFn != nil {
		return f.DeleteUserFn(ctx, id)
	}
	panic("unexpected DeleteUser")
}

func (f *FakeStore) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

var (
	_ UserStore = (*Postgres)(nil)
	_ UserStore = (*SQLite)(nil)
	_ UserStore = (*Cached)(nil)
	_ UserStore = (*FakeStore)(nil)
)
