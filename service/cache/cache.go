package cache

import (
	"errors"
	"time"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

type OneTimeGetter func() (interface{}, error)

// Service is a typed cache over a byte provider
type Service interface {
	// GetByFunc loads from cache, falling back to getter and caching its result
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
}
