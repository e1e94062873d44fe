package healthcheck

import (
	"github.com/pricy-xyz/goauction/base/ctx"
)

type HealthCheckRepo interface {
	PingDB(ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
