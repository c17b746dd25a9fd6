package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"userboard/internal/cache"
	"userboard/internal/model"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

const (
	// usersGenKey 每次寫入成功後遞增
	usersGenKey = "users:gen"
	// usersSnapshotPrefix 後接世代編號，例如 users:all:3
	usersSnapshotPrefix = "users:all:"
)

func snapshotKey(gen int64) string {
	return usersSnapshotPrefix + strconv.FormatInt(gen, 10)
}

// Cached 將 ListUsers 的結果以 JSON 存入 Redis。
// 快照以讀取資料庫「之前」取得的世代為 key，寫入成功後遞增世代，
// 因此與寫入交錯的讀取只會把舊資料存進已淘汰的 key。
// 快取失敗只記錄 log，不影響請求結果。
type Cached struct {
	next  UserStore
	cache cache.Cache
	ttl   time.Duration
}

func NewCached(next UserStore, c cache.Cache, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: c, ttl: ttl}
}

func (s *Cached) InsertUser(ctx context.Context, name string) (int64, error) {
	id, err := s.next.InsertUser(ctx, name)
	if err != nil {
		return 0, err
	}
	s.bump(ctx)
	return id, nil
}

func (s *Cached) ListUsers(ctx context.Context) ([]model.User, error) {
	gen, err := s.generation(ctx)
	if err != nil {
		// 無法得知世代時不讀也不寫快取
		log.Warnf("users cache: generation: %v", err)
		return s.next.ListUsers(ctx)
	}
	key := snapshotKey(gen)

	raw, err := s.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var users []model.User
		if err := json.Unmarshal(raw, &users); err == nil && users != nil {
			return users, nil
		}
		log.Warnf("users cache: discarding undecodable entry %q", key)
	case !errors.Is(err, redis.Nil):
		log.Warnf("users cache: get: %v", err)
	}

	users, err := s.next.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(users)
	if err != nil {
		log.Warnf("users cache: encode: %v", err)
		return users, nil
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		log.Warnf("users cache: set: %v", err)
	}
	return users, nil
}

func (s *Cached) DeleteUser(ctx context.Context, id int64) error {
	if err := s.next.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

func (s *Cached) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// generation 尚未有任何寫入時為 0
func (s *Cached) generation(ctx context.Context) (int64, error) {
	gen, err := s.cache.Get(ctx, usersGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (s *Cached) bump(ctx context.Context) {
	if err := s.cache.Incr(ctx, usersGenKey).Err(); err != nil {
		log.Warnf("users cache: incr %s: %v", usersGenKey, err)
	}
}
