package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/delivery"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	authMiddleware "github.com/pricy-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.Usecase
	events  auction.EventRepo
}

func New(e *echo.Echo, au auction.Usecase, events auction.EventRepo, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{au, events}

	g := e.Group("/auctions")
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("/:chainId/:contract/:tokenId", h.get)
	g.GET("/:chainId/:contract/:tokenId/highestBid", h.getHighestBid)
	g.GET("/:chainId/:contract/:tokenId/events", h.getEvents)
	g.POST("/:chainId/:contract/:tokenId/bids", h.placeBid, authMiddleware.Auth())
	g.DELETE("/:chainId/:contract/:tokenId/bids", h.withdrawBid, authMiddleware.Auth())
	g.POST("/:chainId/:contract/:tokenId/result", h.result, authMiddleware.Auth())
	g.PATCH("/:chainId/:contract/:tokenId/reservePrice", h.updateReservePrice, authMiddleware.Auth())
	g.DELETE("/:chainId/:contract/:tokenId", h.cancel, authMiddleware.Auth())

	e.POST("/admin/reclaim", h.reclaim, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

type assetParams struct {
	ChainId  domain.ChainId `param:"chainId"`
	Contract domain.Address `param:"contract"`
	TokenId  domain.TokenId `param:"tokenId"`
}

func (p *assetParams) toId() auction.Id {
	return auction.Id{ChainId: p.ChainId, AssetContract: p.Contract, TokenId: p.TokenId}
}

// statusOf keeps admission failures distinguishable from engine faults
func statusOf(err error) int {
	switch err {
	case domain.ErrInvalidStartTime, domain.ErrEndTimeTooSoon, domain.ErrAuctionAlreadyExists,
		domain.ErrNotOwnerOrApproved, domain.ErrNonexistentAsset, domain.ErrInvalidPayToken,
		domain.ErrOutsideAuctionWindow, domain.ErrBelowReservePrice, domain.ErrInsufficientOutbid,
		domain.ErrContractBidder, domain.ErrNotHighestBidder, domain.ErrWithdrawalLocked,
		domain.ErrAuctionNotEnded, domain.ErrNoOpenBids, domain.ErrReserveNotReached,
		domain.ErrSenderNotOwner, domain.ErrInvalidNumberFormat, domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrPaused:
		return http.StatusServiceUnavailable
	case domain.ErrUnauthorized:
		return http.StatusMethodNotAllowed
	case domain.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type payload struct {
		ChainId       domain.ChainId `json:"chainId"`
		Contract      domain.Address `json:"assetContract"`
		TokenId       domain.TokenId `json:"tokenId"`
		PayToken      domain.Address `json:"payToken"`
		ReservePrice  string         `json:"reservePrice"`
		MinBidReserve bool           `json:"minBidReserve"`
		StartTime     int64          `json:"startTime"`
		EndTime       int64          `json:"endTime"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	err := h.auction.CreateAuction(ctx, auction.CreateAuctionParams{
		Id:            auction.Id{ChainId: p.ChainId, AssetContract: p.Contract, TokenId: p.TokenId},
		Seller:        seller,
		PayToken:      p.PayToken,
		ReservePrice:  p.ReservePrice,
		MinBidReserve: p.MinBidReserve,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
	})
	if err != nil {
		ctx.WithField("err", err).Error("auction.CreateAuction failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.GetAuction(ctx, p.toId()); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getHighestBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.GetHighestBid(ctx, p.toId()); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.events.FindAllByAsset(ctx, p.toId()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	type payload struct {
		assetParams
		Amount string `json:"amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.PlaceBid(ctx, p.toId(), bidder, p.Amount); err != nil {
		ctx.WithField("err", err).Error("auction.PlaceBid failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) withdrawBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.WithdrawBid(ctx, p.toId(), caller); err != nil {
		ctx.WithField("err", err).Error("auction.WithdrawBid failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) result(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if ev, err := h.auction.ResultAuction(ctx, p.toId(), caller); err != nil {
		ctx.WithField("err", err).Error("auction.ResultAuction failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, ev)
	}
}

func (h *handler) updateReservePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		assetParams
		ReservePrice string `json:"reservePrice"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.UpdateReservePrice(ctx, p.toId(), caller, p.ReservePrice); err != nil {
		ctx.WithField("err", err).Error("auction.UpdateReservePrice failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.CancelAuction(ctx, p.toId(), caller); err != nil {
		ctx.WithField("err", err).Error("auction.CancelAuction failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) reclaim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		ChainId domain.ChainId `json:"chainId"`
		Token   domain.Address `json:"token"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if swept, err := h.auction.ReclaimToken(ctx, caller, p.ChainId, p.Token); err != nil {
		ctx.WithField("err", err).Error("auction.ReclaimToken failed")
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, swept)
	}
}
