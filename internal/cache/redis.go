package cache

import (
	"context"
	"fmt"
	"time"

	"userboard/internal/config"

	"github.com/redis/go-redis/v9"
)

// pingTimeout 為啟動時連線檢查的上限
const pingTimeout = 5 * time.Second

// redisClient 為 NewRedisClient 內部所需的方法，測試時可替換
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 依設定的 REDIS_* 連線並確認可 Ping，失敗時釋放 client
func NewRedisClient(ctx context.Context, cfg config.Config) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:       cfg.RedisAddr,
		Password:   cfg.RedisPassword,
		DB:         cfg.RedisDB,
		ClientName: "userboard",
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
