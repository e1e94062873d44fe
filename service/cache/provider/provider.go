package provider

import (
	"errors"
	"time"

	"github.com/pricy-xyz/goauction/base/ctx"
)

var (
	ErrNotFound = errors.New("cache entry not found")
)

// Provider is a byte-level cache backend
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
