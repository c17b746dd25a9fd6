// Package store 提供 users 資料表的存取；所有後端都實作 UserStore。
package store

import (
	"context"
	"errors"
	"fmt"

	"userboard/internal/model"
)

// ErrStorageUnavailable 包裝所有後端錯誤，handler 以 errors.Is 判斷
var ErrStorageUnavailable = errors.New("storage unavailable")

// UserStore 是 handler 唯一依賴的儲存介面
type UserStore interface {
	// InsertUser 以原樣的 name 建立使用者並回傳新配發的 id
	InsertUser(ctx context.Context, name string) (int64, error)
	// ListUsers 依 id 遞增回傳所有使用者的快照，永不為 nil
	ListUsers(ctx context.Context) ([]model.User, error)
	// DeleteUser 刪除指定 id；id 不存在時不回傳錯誤
	DeleteUser(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
