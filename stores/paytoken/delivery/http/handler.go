package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/delivery"
	"github.com/pricy-xyz/goauction/domain"
	authMiddleware "github.com/pricy-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	paytoken domain.PayTokenUsecase
}

func New(e *echo.Echo, paytoken domain.PayTokenUsecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{paytoken}

	g := e.Group("/paytokens")
	g.GET("/:chainId/:address", h.get)
	g.POST("", h.register, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.DELETE("/:chainId/:address", h.unregister, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
		Address domain.Address `param:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.paytoken.Get(ctx, p.ChainId, p.Address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &domain.PayToken{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if len(p.Address) == 0 || p.ChainId == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.paytoken.Register(ctx, p); err != nil {
		ctx.WithField("err", err).Error("paytoken.Register failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) unregister(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
		Address domain.Address `param:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.paytoken.Unregister(ctx, p.ChainId, p.Address); err != nil {
		ctx.WithField("err", err).Error("paytoken.Unregister failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
