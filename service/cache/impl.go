package cache

import (
	"encoding/json"
	"reflect"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/service/cache/provider"
)

type impl struct {
	cfg ServiceConfig
}

func New(cfg ServiceConfig) Service {
	return &impl{cfg: cfg}
}

func (im *impl) key(key string) string {
	if im.cfg.Pfx == "" {
		return key
	}
	return im.cfg.Pfx + ":" + key
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	if err := im.Get(c, key, container); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	value, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, value); err != nil {
		c.WithField("err", err).Warn("cache set failed after getter")
	}

	// copy getter result into container
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	data, _, err := im.cfg.Cache.Get(c, im.key(key))
	if err != nil {
		if err == provider.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, container)
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	if value == nil || (reflect.ValueOf(value).Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil()) {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return im.cfg.Cache.Set(c, im.key(key), data, im.cfg.Ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	return im.cfg.Cache.Del(c, im.key(key))
}
