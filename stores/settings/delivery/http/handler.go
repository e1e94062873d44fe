package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/delivery"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/settings"
	authMiddleware "github.com/pricy-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	settings settings.Usecase
}

func New(e *echo.Echo, settings settings.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{settings}

	e.GET("/settings", h.get)

	g := e.Group("/admin/settings", authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.POST("/platformFee", h.updatePlatformFee)
	g.POST("/platformFeeRecipient", h.updatePlatformFeeRecipient)
	g.POST("/bidWithdrawalLockTime", h.updateBidWithdrawalLockTime)
	g.POST("/minBidIncrement", h.updateMinBidIncrement)
	g.POST("/pause", h.togglePause)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.settings.Get(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) updatePlatformFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Bps int64 `json:"bps"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settings.UpdatePlatformFee(ctx, caller, p.Bps); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updatePlatformFeeRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Recipient domain.Address `json:"recipient"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settings.UpdatePlatformFeeRecipient(ctx, caller, p.Recipient); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateBidWithdrawalLockTime(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Seconds int64 `json:"seconds"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settings.UpdateBidWithdrawalLockTime(ctx, caller, p.Seconds); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) updateMinBidIncrement(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Increment string `json:"increment"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settings.UpdateMinBidIncrement(ctx, caller, p.Increment); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) togglePause(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if paused, err := h.settings.TogglePause(ctx, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else {
		res := struct {
			Paused bool `json:"paused"`
		}{paused}
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
