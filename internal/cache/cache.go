package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 為使用者列表快取與健康檢查所需的 Redis 指令子集
// *redis.Client 直接實作；測試時以 FakeCache 或 MemoryCache 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Close() error
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	IncrFn  func(ctx context.Context, key string) *redis.IntCmd
	CloseFn func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Incr 執行 Fake 設定或 panic
func (f *FakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.IncrFn != nil {
		return f.IncrFn(ctx, key)
	}
	panic("unexpected Incr")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// MemoryCache 回傳以 map 為底的 FakeCache，行為近似單機 Redis（不處理過期）
// 僅供測試使用
func MemoryCache() *FakeCache {
	var mu sync.Mutex
	data := map[string]string{}
	return &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
			mu.Lock()
			defer mu.Unlock()
			switch v := value.(type) {
			case string:
				data[key] = v
			case []byte:
				data[key] = string(v)
			default:
				panic("MemoryCache: unsupported value type")
			}
			return redis.NewStatusResult("OK", nil)
		},
		IncrFn: func(_ context.Context, key string) *redis.IntCmd {
			mu.Lock()
			defer mu.Unlock()
			var n int64
			if v, ok := data[key]; ok {
				var err error
				if n, err = strconv.ParseInt(v, 10, 64); err != nil {
					return redis.NewIntResult(0, err)
				}
			}
			n++
			data[key] = strconv.FormatInt(n, 10)
			return redis.NewIntResult(n, nil)
		},
	}
}
