package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/starknet-id/goapi/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis key has no ttl")
)

// Service is the subset of redis used by the cache providers and the health
// check.
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	TTL(c ctx.Ctx, key string) (int, error)
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
	Ping(c ctx.Ctx) error
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}
