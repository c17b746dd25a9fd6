// Package config 從環境變數載入服務設定
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config 為服務所有設定
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`
	Debug       bool   `env:"DEBUG"`

	// Redis 為選用；REDIS_ADDR 為空時停用使用者列表快取
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"30s" validate:"gt=0"`
}

// CacheEnabled 是否設定了 Redis 位址
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// String 遮蔽 DATABASE_URL 與密碼
func (c Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, DB: *** (masked) ***, Redis: %q/%d, CacheTTL: %s, Debug: %t}",
		c.HTTPAddr, c.RedisAddr, c.RedisDB, c.CacheTTL, c.Debug)
}

var validate = validator.New()

// Load 解析環境變數並驗證
func Load() (Config, error) {
	return LoadFrom(env.Options{})
}

// LoadFrom 同 Load，但可指定 env.Options（測試時傳入固定的 Environment）
func LoadFrom(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
