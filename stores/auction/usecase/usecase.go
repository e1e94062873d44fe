package usecase

import (
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/pricy-xyz/goauction/base/clock"
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/log"
	"github.com/pricy-xyz/goauction/base/metrics"
	"github.com/pricy-xyz/goauction/base/price"
	"github.com/pricy-xyz/goauction/base/ptr"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/domain/settings"
)

type AuctionUsecaseCfg struct {
	Auction    auction.Repo
	HighestBid auction.HighestBidRepo
	Event      auction.EventRepo
	Settings   settings.Usecase
	PayToken   domain.PayTokenUsecase
	Asset      auction.AssetOwnership
	Payment    auction.PaymentToken
	Account    auction.AccountInspector
	// Operator is the escrow account holding bidder funds between
	// placement and settlement
	Operator domain.Address
	Clock    clock.Clock
	Metrics  metrics.Service
}

type impl struct {
	auction    auction.Repo
	highestBid auction.HighestBidRepo
	event      auction.EventRepo
	settings   settings.Usecase
	paytoken   domain.PayTokenUsecase
	asset      auction.AssetOwnership
	payment    auction.PaymentToken
	account    auction.AccountInspector
	operator   domain.Address
	clock      clock.Clock
	metrics    metrics.Service

	// serializes every state-mutating operation so concurrent bids,
	// settlements and cancels observe each other's writes
	mu sync.Mutex
}

func New(cfg *AuctionUsecaseCfg) auction.Usecase {
	return &impl{
		auction:    cfg.Auction,
		highestBid: cfg.HighestBid,
		event:      cfg.Event,
		settings:   cfg.Settings,
		paytoken:   cfg.PayToken,
		asset:      cfg.Asset,
		payment:    cfg.Payment,
		account:    cfg.Account,
		operator:   cfg.Operator,
		clock:      cfg.Clock,
		metrics:    cfg.Metrics,
	}
}

func (im *impl) now() int64 {
	return im.clock.Now().Unix()
}

func (im *impl) CreateAuction(c bCtx.Ctx, p auction.CreateAuctionParams) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	defer im.metrics.BumpTime("auction.create.time").End()

	cfg, err := im.settings.Get(c)
	if err != nil {
		return err
	}
	if cfg.Paused {
		return domain.ErrPaused
	}

	if _, err := domain.ToAmount(p.ReservePrice); err != nil {
		return err
	}

	now := im.now()
	if p.StartTime <= now {
		return domain.ErrInvalidStartTime
	}
	if p.EndTime < p.StartTime+auction.MinDuration {
		return domain.ErrEndTimeTooSoon
	}

	owner, err := im.asset.OwnerOf(c, p.Id.ChainId, p.Id.AssetContract, p.Id.TokenId)
	if err != nil {
		return err
	}
	approved, err := im.asset.IsApproved(c, p.Id.ChainId, p.Id.AssetContract, p.Id.TokenId, owner)
	if err != nil {
		return err
	}
	if !owner.Equals(p.Seller) || !approved {
		return domain.ErrNotOwnerOrApproved
	}

	if allowed, err := im.paytoken.IsAllowed(c, p.Id.ChainId, p.PayToken); err != nil {
		return err
	} else if !allowed {
		return domain.ErrInvalidPayToken
	}

	if existing, err := im.auction.FindOne(c, p.Id); err != nil {
		return err
	} else if existing != nil {
		return domain.ErrAuctionAlreadyExists
	}

	if err := im.auction.Create(c, &auction.Auction{
		ChainId:       p.Id.ChainId,
		AssetContract: p.Id.AssetContract,
		TokenId:       p.Id.TokenId,
		PayToken:      p.PayToken,
		ReservePrice:  p.ReservePrice,
		MinBidReserve: p.MinBidReserve,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
	}); err != nil {
		return err
	}

	im.metrics.BumpSum("auction.create", 1)
	im.emitEvent(c, p.Id, auction.EventTypeCreated, p.Seller, p.PayToken, p.ReservePrice)
	return nil
}

func (im *impl) PlaceBid(c bCtx.Ctx, id auction.Id, bidder domain.Address, amount string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	defer im.metrics.BumpTime("auction.placeBid.time").End()

	cfg, err := im.settings.Get(c)
	if err != nil {
		return err
	}
	if cfg.Paused {
		return domain.ErrPaused
	}

	if isContract, err := im.account.IsContract(c, id.ChainId, bidder); err != nil {
		return err
	} else if isContract {
		return domain.ErrContractBidder
	}

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return err
	}
	now := im.now()
	if a == nil || a.Resulted || now < a.StartTime || now >= a.EndTime {
		return domain.ErrOutsideAuctionWindow
	}

	bid, err := domain.ToAmount(amount)
	if err != nil {
		return err
	}
	reserve, err := domain.ToAmount(a.ReservePrice)
	if err != nil {
		return err
	}
	if bid.Cmp(reserve) < 0 {
		return domain.ErrBelowReservePrice
	}

	prev, err := im.highestBid.FindOne(c, id)
	if err != nil {
		return err
	}

	pullAmount := bid
	var prevAmount *big.Int
	if prev != nil {
		prevAmount, err = domain.ToAmount(prev.Amount)
		if err != nil {
			return err
		}
		increment, err := domain.ToAmount(cfg.MinBidIncrement)
		if err != nil {
			return err
		}
		floor := new(big.Int).Add(prevAmount, increment)
		if bid.Cmp(floor) < 0 {
			return domain.ErrInsufficientOutbid
		}
		if prev.Bidder.Equals(bidder) {
			// self-rebid tops up the escrowed amount instead of
			// pulling the full bid again
			pullAmount = new(big.Int).Sub(bid, prevAmount)
		}
	}

	if _, err := im.payment.Pull(c, id.ChainId, a.PayToken, bidder, pullAmount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"bidder": bidder,
			"amount": pullAmount,
		}).Error("payment.Pull failed")
		return err
	}

	if prev != nil && !prev.Bidder.Equals(bidder) {
		if _, err := im.payment.Push(c, id.ChainId, a.PayToken, prev.Bidder, prevAmount); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"bidder": prev.Bidder,
				"amount": prevAmount,
			}).Error("payment.Push failed, refunding incoming bid")
			// undo the pull so a stuck refund never strands the
			// new bidder's funds
			if _, err := im.payment.Push(c, id.ChainId, a.PayToken, bidder, pullAmount); err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"bidder": bidder,
					"amount": pullAmount,
				}).Error("compensating refund failed")
			}
			return err
		}
		im.emitEvent(c, id, auction.EventTypeBidRefunded, prev.Bidder, a.PayToken, prev.Amount)
	}

	if err := im.highestBid.Upsert(c, &auction.HighestBid{
		ChainId:       id.ChainId,
		AssetContract: id.AssetContract,
		TokenId:       id.TokenId,
		Bidder:        bidder,
		Amount:        bid.String(),
		LastBidTime:   now,
	}); err != nil {
		return err
	}

	im.metrics.BumpSum("auction.placeBid", 1)
	im.emitEvent(c, id, auction.EventTypeBidPlaced, bidder, a.PayToken, bid.String())
	return nil
}

func (im *impl) WithdrawBid(c bCtx.Ctx, id auction.Id, caller domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	bid, err := im.highestBid.FindOne(c, id)
	if err != nil {
		return err
	}
	if bid == nil || !bid.Bidder.Equals(caller) {
		return domain.ErrNotHighestBidder
	}

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return err
	}
	if a == nil || a.Resulted {
		return domain.ErrNotHighestBidder
	}

	cfg, err := im.settings.Get(c)
	if err != nil {
		return err
	}
	if cfg.Paused {
		return domain.ErrPaused
	}
	now := im.now()
	if now <= a.EndTime || now-a.EndTime < cfg.BidWithdrawalLockSeconds {
		return domain.ErrWithdrawalLocked
	}

	amount, err := domain.ToAmount(bid.Amount)
	if err != nil {
		return err
	}
	if _, err := im.payment.Push(c, id.ChainId, a.PayToken, caller, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"bidder": caller,
			"amount": amount,
		}).Error("payment.Push failed")
		return err
	}

	if err := im.highestBid.Delete(c, id); err != nil {
		return err
	}

	im.metrics.BumpSum("auction.withdrawBid", 1)
	im.emitEvent(c, id, auction.EventTypeBidWithdrawn, caller, a.PayToken, bid.Amount)
	return nil
}

func (im *impl) ResultAuction(c bCtx.Ctx, id auction.Id, caller domain.Address) (*auction.Event, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	defer im.metrics.BumpTime("auction.result.time").End()

	owner, err := im.asset.OwnerOf(c, id.ChainId, id.AssetContract, id.TokenId)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(caller) {
		return nil, domain.ErrSenderNotOwner
	}

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.Resulted {
		return nil, domain.ErrSenderNotOwner
	}

	if im.now() <= a.EndTime {
		return nil, domain.ErrAuctionNotEnded
	}

	bid, err := im.highestBid.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrNoOpenBids
	}

	winBid, err := domain.ToAmount(bid.Amount)
	if err != nil {
		return nil, err
	}
	reserve, err := domain.ToAmount(a.ReservePrice)
	if err != nil {
		return nil, err
	}
	if winBid.Cmp(reserve) < 0 {
		return nil, domain.ErrReserveNotReached
	}

	cfg, err := im.settings.Get(c)
	if err != nil {
		return nil, err
	}
	platformCut, sellerAmount := auction.SplitProceeds(winBid, reserve, cfg.PlatformFeeBps)

	// resulted flips before anything leaves escrow: a replay stops at the
	// resulted check above, and escrow not yet disbursed stays sweepable
	// through ReclaimToken.
	if err := im.auction.Patch(c, id, &auction.AuctionPatchable{Resulted: ptr.Bool(true)}); err != nil {
		return nil, err
	}

	if _, err := im.asset.Transfer(c, id.ChainId, id.AssetContract, id.TokenId, caller, bid.Bidder); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"winner": bid.Bidder,
		}).Error("asset.Transfer failed")
		return nil, err
	}

	if platformCut.Sign() > 0 {
		if _, err := im.payment.Push(c, id.ChainId, a.PayToken, cfg.PlatformFeeRecipient, platformCut); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"amount": platformCut,
			}).Error("platform fee payout failed")
			return nil, err
		}
	}
	if sellerAmount.Sign() > 0 {
		if _, err := im.payment.Push(c, id.ChainId, a.PayToken, caller, sellerAmount); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"amount": sellerAmount,
			}).Error("seller payout failed")
			return nil, err
		}
	}

	im.metrics.BumpSum("auction.result", 1)
	ev := im.emitEvent(c, id, auction.EventTypeResulted, bid.Bidder, a.PayToken, bid.Amount)
	return ev, nil
}

func (im *impl) CancelAuction(c bCtx.Ctx, id auction.Id, caller domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	owner, err := im.asset.OwnerOf(c, id.ChainId, id.AssetContract, id.TokenId)
	if err != nil {
		return err
	}
	if !owner.Equals(caller) {
		return domain.ErrSenderNotOwner
	}

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return err
	}
	if a == nil || a.Resulted {
		return domain.ErrSenderNotOwner
	}

	bid, err := im.highestBid.FindOne(c, id)
	if err != nil {
		return err
	}
	if bid != nil {
		amount, err := domain.ToAmount(bid.Amount)
		if err != nil {
			return err
		}
		if _, err := im.payment.Push(c, id.ChainId, a.PayToken, bid.Bidder, amount); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"bidder": bid.Bidder,
				"amount": amount,
			}).Error("payment.Push failed")
			return err
		}
		if err := im.highestBid.Delete(c, id); err != nil {
			return err
		}
		im.emitEvent(c, id, auction.EventTypeBidRefunded, bid.Bidder, a.PayToken, bid.Amount)
	}

	if err := im.auction.Delete(c, id); err != nil {
		return err
	}

	im.metrics.BumpSum("auction.cancel", 1)
	im.emitEvent(c, id, auction.EventTypeCancelled, caller, a.PayToken, a.ReservePrice)
	return nil
}

func (im *impl) UpdateReservePrice(c bCtx.Ctx, id auction.Id, caller domain.Address, reservePrice string) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if _, err := domain.ToAmount(reservePrice); err != nil {
		return err
	}

	owner, err := im.asset.OwnerOf(c, id.ChainId, id.AssetContract, id.TokenId)
	if err != nil {
		return err
	}
	if !owner.Equals(caller) {
		return domain.ErrSenderNotOwner
	}

	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return err
	}
	if a == nil || a.Resulted {
		return domain.ErrSenderNotOwner
	}

	return im.auction.Patch(c, id, &auction.AuctionPatchable{ReservePrice: ptr.String(reservePrice)})
}

// GetAuction returns the zero-value record when none exists, matching the
// cleared state a cancel leaves behind.
func (im *impl) GetAuction(c bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.auction.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return &auction.Auction{}, nil
	}
	return a, nil
}

func (im *impl) GetHighestBid(c bCtx.Ctx, id auction.Id) (*auction.HighestBid, error) {
	bid, err := im.highestBid.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return &auction.HighestBid{}, nil
	}
	return bid, nil
}

// ReclaimToken sweeps the part of the operator balance not backing any open
// bid. Escrowed amounts stay untouchable until their auctions settle.
func (im *impl) ReclaimToken(c bCtx.Ctx, caller domain.Address, chainId domain.ChainId, token domain.Address) (string, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if !im.settings.IsAdmin(caller) {
		return "", domain.ErrUnauthorized
	}

	auctions, err := im.auction.FindAll(c,
		auction.WithChainId(chainId),
		auction.WithPayToken(token),
		auction.WithResulted(false),
	)
	if err != nil {
		return "", err
	}

	tracked := new(big.Int)
	for _, a := range auctions {
		bid, err := im.highestBid.FindOne(c, a.ToId())
		if err != nil {
			return "", err
		}
		if bid == nil {
			continue
		}
		amount, err := domain.ToAmount(bid.Amount)
		if err != nil {
			return "", err
		}
		tracked.Add(tracked, amount)
	}

	balance, err := im.payment.BalanceOf(c, chainId, token, im.operator)
	if err != nil {
		return "", err
	}

	excess := new(big.Int).Sub(balance, tracked)
	if excess.Sign() <= 0 {
		return "0", nil
	}

	if _, err := im.payment.Push(c, chainId, token, caller, excess); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"amount": excess,
		}).Error("payment.Push failed")
		return "", err
	}

	im.metrics.BumpSum("auction.reclaim", 1)
	return excess.String(), nil
}

func (im *impl) emitEvent(c bCtx.Ctx, id auction.Id, typ auction.EventType, account domain.Address, payToken domain.Address, amount string) *auction.Event {
	ev := &auction.Event{
		EventId:       uuid.New().String(),
		Type:          typ,
		ChainId:       id.ChainId,
		AssetContract: id.AssetContract,
		TokenId:       id.TokenId,
		Account:       account,
		Amount:        amount,
		DisplayAmount: im.displayAmount(c, id.ChainId, payToken, amount),
		Time:          im.now(),
	}
	if err := im.event.Insert(c, ev); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": ev.Type,
		}).Warn("event.Insert failed")
	}
	return ev
}

func (im *impl) displayAmount(c bCtx.Ctx, chainId domain.ChainId, payToken domain.Address, amount string) string {
	n, err := domain.ToAmount(amount)
	if err != nil {
		return amount
	}
	pt, err := im.paytoken.Get(c, chainId, payToken)
	if err != nil {
		return amount
	}
	return price.ToDisplay(n, pt.TokenDecimals)
}
