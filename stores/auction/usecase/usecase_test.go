package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pricy-xyz/goauction/base/clock"
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/metrics"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	aMocks "github.com/pricy-xyz/goauction/domain/auction/mocks"
	dMocks "github.com/pricy-xyz/goauction/domain/mocks"
	"github.com/pricy-xyz/goauction/domain/settings"
	sMocks "github.com/pricy-xyz/goauction/domain/settings/mocks"
)

const baseTime = int64(1700000000)

var (
	seller   = domain.Address("0x00000000000000000000000000000000000sella")
	bidder   = domain.Address("0x00000000000000000000000000000000000bidda")
	outbid   = domain.Address("0x0000000000000000000000000000000000outbid")
	operator = domain.Address("0x000000000000000000000000000000000escrow0")
	feeRcpt  = domain.Address("0x00000000000000000000000000000000000feeee")
	payToken = domain.Address("0x000000000000000000000000000000000weth000")
)

type auctionUsecaseSuite struct {
	suite.Suite

	auctions  *aMocks.Repo
	bids      *aMocks.HighestBidRepo
	events    *aMocks.EventRepo
	settings  *sMocks.Usecase
	paytokens *dMocks.PayTokenUsecase
	asset     *aMocks.AssetOwnership
	payment   *aMocks.PaymentToken
	inspector *aMocks.AccountInspector
	clock     *clock.Mock

	uc  auction.Usecase
	ctx bCtx.Ctx
	id  auction.Id
}

func TestAuctionUsecaseSuite(t *testing.T) {
	suite.Run(t, new(auctionUsecaseSuite))
}

func (s *auctionUsecaseSuite) SetupTest() {
	s.auctions = &aMocks.Repo{}
	s.bids = &aMocks.HighestBidRepo{}
	s.events = &aMocks.EventRepo{}
	s.settings = &sMocks.Usecase{}
	s.paytokens = &dMocks.PayTokenUsecase{}
	s.asset = &aMocks.AssetOwnership{}
	s.payment = &aMocks.PaymentToken{}
	s.inspector = &aMocks.AccountInspector{}
	s.clock = clock.NewMock()
	s.clock.Set(time.Unix(baseTime, 0))

	s.uc = New(&AuctionUsecaseCfg{
		Auction:    s.auctions,
		HighestBid: s.bids,
		Event:      s.events,
		Settings:   s.settings,
		PayToken:   s.paytokens,
		Asset:      s.asset,
		Payment:    s.payment,
		Account:    s.inspector,
		Operator:   operator,
		Clock:      s.clock,
		Metrics:    metrics.New("test"),
	})
	s.ctx = bCtx.Background()
	s.id = auction.Id{ChainId: 1, AssetContract: "0xc011ec7", TokenId: "42"}

	// defaults most cases rely on
	s.settings.On("Get", mock.Anything).Return(&settings.Settings{
		PlatformFeeRecipient:     feeRcpt,
		PlatformFeeBps:           750,
		BidWithdrawalLockSeconds: 1200,
		MinBidIncrement:          "100000000000000000",
	}, nil).Maybe()
	s.events.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.paytokens.On("Get", mock.Anything, domain.ChainId(1), payToken).
		Return(&domain.PayToken{TokenDecimals: 18, Address: payToken}, nil).Maybe()
}

func (s *auctionUsecaseSuite) openAuction(start, end int64) *auction.Auction {
	return &auction.Auction{
		ChainId:       s.id.ChainId,
		AssetContract: s.id.AssetContract,
		TokenId:       s.id.TokenId,
		PayToken:      payToken,
		ReservePrice:  "100000000000000000",
		StartTime:     start,
		EndTime:       end,
	}
}

func (s *auctionUsecaseSuite) createParams() auction.CreateAuctionParams {
	return auction.CreateAuctionParams{
		Id:           s.id,
		Seller:       seller,
		PayToken:     payToken,
		ReservePrice: "100000000000000000",
		StartTime:    baseTime + 60,
		EndTime:      baseTime + 60 + 600,
	}
}

func (s *auctionUsecaseSuite) TestCreateAuction() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.asset.On("IsApproved", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller).Return(true, nil)
	s.paytokens.On("IsAllowed", mock.Anything, s.id.ChainId, payToken).Return(true, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(nil, nil)
	s.auctions.On("Create", mock.Anything, mock.Anything).Return(nil)

	s.NoError(s.uc.CreateAuction(s.ctx, s.createParams()))
	s.auctions.AssertCalled(s.T(), "Create", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.EndTime == baseTime+660 && !a.Resulted
	}))
}

func (s *auctionUsecaseSuite) TestCreateAuctionStartInPast() {
	p := s.createParams()
	p.StartTime = baseTime
	p.EndTime = baseTime + 600
	s.ErrorIs(s.uc.CreateAuction(s.ctx, p), domain.ErrInvalidStartTime)
}

func (s *auctionUsecaseSuite) TestCreateAuctionTooShort() {
	p := s.createParams()
	p.EndTime = p.StartTime + auction.MinDuration - 1
	s.ErrorIs(s.uc.CreateAuction(s.ctx, p), domain.ErrEndTimeTooSoon)
}

func (s *auctionUsecaseSuite) TestCreateAuctionNotOwner() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(bidder, nil)
	s.asset.On("IsApproved", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, bidder).Return(true, nil)
	s.ErrorIs(s.uc.CreateAuction(s.ctx, s.createParams()), domain.ErrNotOwnerOrApproved)
}

func (s *auctionUsecaseSuite) TestCreateAuctionNotApproved() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.asset.On("IsApproved", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller).Return(false, nil)
	s.ErrorIs(s.uc.CreateAuction(s.ctx, s.createParams()), domain.ErrNotOwnerOrApproved)
}

func (s *auctionUsecaseSuite) TestCreateAuctionPayTokenNotAllowed() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.asset.On("IsApproved", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller).Return(true, nil)
	s.paytokens.On("IsAllowed", mock.Anything, s.id.ChainId, payToken).Return(false, nil)
	s.ErrorIs(s.uc.CreateAuction(s.ctx, s.createParams()), domain.ErrInvalidPayToken)
}

func (s *auctionUsecaseSuite) TestCreateAuctionAlreadyExists() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.asset.On("IsApproved", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller).Return(true, nil)
	s.paytokens.On("IsAllowed", mock.Anything, s.id.ChainId, payToken).Return(true, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.ErrorIs(s.uc.CreateAuction(s.ctx, s.createParams()), domain.ErrAuctionAlreadyExists)
}

func (s *auctionUsecaseSuite) TestCreateAuctionPaused() {
	s.settings.ExpectedCalls = nil
	s.settings.On("Get", mock.Anything).Return(&settings.Settings{Paused: true}, nil)
	s.ErrorIs(s.uc.CreateAuction(s.ctx, s.createParams()), domain.ErrPaused)
}

func (s *auctionUsecaseSuite) TestPlaceBidFirstBid() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, bidder).Return(false, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(nil, nil)
	s.payment.On("Pull", mock.Anything, s.id.ChainId, payToken, bidder, big.NewInt(200000000000000000)).
		Return(domain.TxHash("0x1"), nil)
	s.bids.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	s.NoError(s.uc.PlaceBid(s.ctx, s.id, bidder, "200000000000000000"))
	s.bids.AssertCalled(s.T(), "Upsert", mock.Anything, mock.MatchedBy(func(b *auction.HighestBid) bool {
		return b.Bidder == bidder && b.Amount == "200000000000000000" && b.LastBidTime == baseTime
	}))
}

func (s *auctionUsecaseSuite) TestPlaceBidBelowReserve() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, bidder).Return(false, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, bidder, "99999999999999999"), domain.ErrBelowReservePrice)
}

func (s *auctionUsecaseSuite) TestPlaceBidOutsideWindow() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, bidder).Return(false, nil)

	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime+10, baseTime+1000), nil).Once()
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, bidder, "200000000000000000"), domain.ErrOutsideAuctionWindow)

	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-1000, baseTime), nil).Once()
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, bidder, "200000000000000000"), domain.ErrOutsideAuctionWindow)

	s.auctions.On("FindOne", mock.Anything, s.id).Return(nil, nil).Once()
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, bidder, "200000000000000000"), domain.ErrOutsideAuctionWindow)
}

func (s *auctionUsecaseSuite) TestPlaceBidContractBidder() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, bidder).Return(true, nil)
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, bidder, "200000000000000000"), domain.ErrContractBidder)
}

func (s *auctionUsecaseSuite) TestPlaceBidPaused() {
	s.settings.ExpectedCalls = nil
	s.settings.On("Get", mock.Anything).Return(&settings.Settings{Paused: true}, nil)
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, bidder, "200000000000000000"), domain.ErrPaused)
}

func (s *auctionUsecaseSuite) TestPlaceBidInsufficientOutbid() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, outbid).Return(false, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)

	// raise below previous + min increment
	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, outbid, "250000000000000000"), domain.ErrInsufficientOutbid)
}

func (s *auctionUsecaseSuite) TestPlaceBidOutbidRefundsPrevious() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, outbid).Return(false, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)
	s.payment.On("Pull", mock.Anything, s.id.ChainId, payToken, outbid, big.NewInt(300000000000000000)).
		Return(domain.TxHash("0x1"), nil)
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, bidder, big.NewInt(200000000000000000)).
		Return(domain.TxHash("0x2"), nil)
	s.bids.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	s.NoError(s.uc.PlaceBid(s.ctx, s.id, outbid, "300000000000000000"))
	s.payment.AssertExpectations(s.T())
}

func (s *auctionUsecaseSuite) TestPlaceBidSelfRebidPullsDelta() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, bidder).Return(false, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)
	// only the 0.1 top-up leaves the bidder's wallet
	s.payment.On("Pull", mock.Anything, s.id.ChainId, payToken, bidder, big.NewInt(100000000000000000)).
		Return(domain.TxHash("0x1"), nil)
	s.bids.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	s.NoError(s.uc.PlaceBid(s.ctx, s.id, bidder, "300000000000000000"))
	s.payment.AssertNotCalled(s.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *auctionUsecaseSuite) TestPlaceBidRefundFailureCompensates() {
	s.inspector.On("IsContract", mock.Anything, s.id.ChainId, outbid).Return(false, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)
	s.payment.On("Pull", mock.Anything, s.id.ChainId, payToken, outbid, big.NewInt(300000000000000000)).
		Return(domain.TxHash("0x1"), nil)
	refundErr := errors.New("transfer reverted")
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, bidder, big.NewInt(200000000000000000)).
		Return(domain.TxHash(""), refundErr)
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, outbid, big.NewInt(300000000000000000)).
		Return(domain.TxHash("0x3"), nil)

	s.ErrorIs(s.uc.PlaceBid(s.ctx, s.id, outbid, "300000000000000000"), refundErr)
	s.bids.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
	s.payment.AssertExpectations(s.T())
}

func (s *auctionUsecaseSuite) TestWithdrawBidNotHighest() {
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{Bidder: bidder, Amount: "1"}, nil)
	s.ErrorIs(s.uc.WithdrawBid(s.ctx, s.id, outbid), domain.ErrNotHighestBidder)
}

func (s *auctionUsecaseSuite) TestWithdrawBidLocked() {
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)

	// still running
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil).Once()
	s.ErrorIs(s.uc.WithdrawBid(s.ctx, s.id, bidder), domain.ErrWithdrawalLocked)

	// ended but inside the lock window
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-2000, baseTime-1000), nil).Once()
	s.ErrorIs(s.uc.WithdrawBid(s.ctx, s.id, bidder), domain.ErrWithdrawalLocked)
}

func (s *auctionUsecaseSuite) TestWithdrawBidAfterLock() {
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		ChainId:       s.id.ChainId,
		AssetContract: s.id.AssetContract,
		TokenId:       s.id.TokenId,
		Bidder:        bidder,
		Amount:        "200000000000000000",
	}, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-3000, baseTime-1500), nil)
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, bidder, big.NewInt(200000000000000000)).
		Return(domain.TxHash("0x1"), nil)
	s.bids.On("Delete", mock.Anything, s.id).Return(nil)

	s.NoError(s.uc.WithdrawBid(s.ctx, s.id, bidder))
	s.bids.AssertCalled(s.T(), "Delete", mock.Anything, s.id)
}

func (s *auctionUsecaseSuite) TestWithdrawBidPaused() {
	s.settings.ExpectedCalls = nil
	s.settings.On("Get", mock.Anything).Return(&settings.Settings{
		Paused:                   true,
		BidWithdrawalLockSeconds: 1200,
	}, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)
	// eligible on every other count: ended and past the lock window
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-3000, baseTime-1500), nil)

	s.ErrorIs(s.uc.WithdrawBid(s.ctx, s.id, bidder), domain.ErrPaused)
	s.payment.AssertNotCalled(s.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.bids.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *auctionUsecaseSuite) TestResultAuction() {
	ended := s.openAuction(baseTime-2000, baseTime-100)
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(ended, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "400000000000000000",
	}, nil)
	// fee is 7.5% of the 0.3 excess over the 0.1 reserve
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, feeRcpt, big.NewInt(22500000000000000)).
		Return(domain.TxHash("0x1"), nil)
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, seller, big.NewInt(377500000000000000)).
		Return(domain.TxHash("0x2"), nil)
	s.asset.On("Transfer", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller, bidder).
		Return(domain.TxHash("0x3"), nil)
	s.auctions.On("Patch", mock.Anything, s.id, mock.Anything).Return(nil)

	ev, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.NoError(err)
	s.Equal(auction.EventTypeResulted, ev.Type)
	s.Equal(bidder, ev.Account)
	s.Equal("400000000000000000", ev.Amount)
	s.Equal("0.4", ev.DisplayAmount)
	s.payment.AssertExpectations(s.T())
	s.auctions.AssertCalled(s.T(), "Patch", mock.Anything, s.id, mock.MatchedBy(func(p *auction.AuctionPatchable) bool {
		return p.Resulted != nil && *p.Resulted
	}))
}

func (s *auctionUsecaseSuite) TestResultAuctionTransferFailureHoldsEscrow() {
	ended := s.openAuction(baseTime-2000, baseTime-100)
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(ended, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "400000000000000000",
	}, nil)
	s.auctions.On("Patch", mock.Anything, s.id, mock.Anything).Return(nil)
	s.asset.On("Transfer", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller, bidder).
		Return(domain.TxHash(""), errors.New("rpc timeout"))

	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.Error(err)
	// nothing left escrow: the record flipped but no payout fired
	s.payment.AssertNotCalled(s.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.auctions.AssertCalled(s.T(), "Patch", mock.Anything, s.id, mock.MatchedBy(func(p *auction.AuctionPatchable) bool {
		return p.Resulted != nil && *p.Resulted
	}))
}

func (s *auctionUsecaseSuite) TestResultAuctionFailedAttemptNotReplayable() {
	ended := s.openAuction(baseTime-2000, baseTime-100)
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(ended, nil).Once()
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "400000000000000000",
	}, nil)
	s.auctions.On("Patch", mock.Anything, s.id, mock.Anything).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller, bidder).
		Return(domain.TxHash(""), errors.New("rpc timeout")).Once()

	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.Error(err)

	// the record flipped on the first attempt, so the retry must stop
	// before any funds move
	settled := s.openAuction(baseTime-2000, baseTime-100)
	settled.Resulted = true
	s.auctions.On("FindOne", mock.Anything, s.id).Return(settled, nil).Once()

	_, err = s.uc.ResultAuction(s.ctx, s.id, seller)
	s.ErrorIs(err, domain.ErrSenderNotOwner)
	s.payment.AssertNotCalled(s.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *auctionUsecaseSuite) TestResultAuctionSellerPayoutFailure() {
	ended := s.openAuction(baseTime-2000, baseTime-100)
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(ended, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "400000000000000000",
	}, nil)
	s.auctions.On("Patch", mock.Anything, s.id, mock.Anything).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId, seller, bidder).
		Return(domain.TxHash("0x3"), nil).Once()
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, feeRcpt, big.NewInt(22500000000000000)).
		Return(domain.TxHash("0x1"), nil).Once()
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, seller, big.NewInt(377500000000000000)).
		Return(domain.TxHash(""), errors.New("rpc timeout")).Once()

	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.Error(err)
	s.payment.AssertExpectations(s.T())
}

func (s *auctionUsecaseSuite) TestResultAuctionNotOwner() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(bidder, nil)
	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.ErrorIs(err, domain.ErrSenderNotOwner)
}

func (s *auctionUsecaseSuite) TestResultAuctionMissingRecord() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(nil, nil)
	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.ErrorIs(err, domain.ErrSenderNotOwner)
}

func (s *auctionUsecaseSuite) TestResultAuctionNotEnded() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.ErrorIs(err, domain.ErrAuctionNotEnded)
}

func (s *auctionUsecaseSuite) TestResultAuctionNoBids() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-2000, baseTime-100), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(nil, nil)
	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.ErrorIs(err, domain.ErrNoOpenBids)
}

func (s *auctionUsecaseSuite) TestResultAuctionReserveNotReached() {
	ended := s.openAuction(baseTime-2000, baseTime-100)
	ended.ReservePrice = "500000000000000000"
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(ended, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "400000000000000000",
	}, nil)
	_, err := s.uc.ResultAuction(s.ctx, s.id, seller)
	s.ErrorIs(err, domain.ErrReserveNotReached)
}

func (s *auctionUsecaseSuite) TestCancelAuctionRefundsBid() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		Bidder: bidder,
		Amount: "200000000000000000",
	}, nil)
	s.payment.On("Push", mock.Anything, s.id.ChainId, payToken, bidder, big.NewInt(200000000000000000)).
		Return(domain.TxHash("0x1"), nil)
	s.bids.On("Delete", mock.Anything, s.id).Return(nil)
	s.auctions.On("Delete", mock.Anything, s.id).Return(nil)

	s.NoError(s.uc.CancelAuction(s.ctx, s.id, seller))
	s.payment.AssertExpectations(s.T())
	s.auctions.AssertCalled(s.T(), "Delete", mock.Anything, s.id)
}

func (s *auctionUsecaseSuite) TestCancelAuctionNotOwner() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.ErrorIs(s.uc.CancelAuction(s.ctx, s.id, bidder), domain.ErrSenderNotOwner)
}

func (s *auctionUsecaseSuite) TestCancelAuctionAlreadyResulted() {
	settled := s.openAuction(baseTime-2000, baseTime-100)
	settled.Resulted = true
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(settled, nil)

	s.ErrorIs(s.uc.CancelAuction(s.ctx, s.id, seller), domain.ErrSenderNotOwner)
	s.payment.AssertNotCalled(s.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.auctions.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *auctionUsecaseSuite) TestGetAfterCancelReturnsZeroValue() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil).Once()
	s.bids.On("FindOne", mock.Anything, s.id).Return(nil, nil)
	s.auctions.On("Delete", mock.Anything, s.id).Return(nil)

	s.NoError(s.uc.CancelAuction(s.ctx, s.id, seller))

	s.auctions.On("FindOne", mock.Anything, s.id).Return(nil, nil)

	a, err := s.uc.GetAuction(s.ctx, s.id)
	s.NoError(err)
	s.Equal(&auction.Auction{}, a)

	bid, err := s.uc.GetHighestBid(s.ctx, s.id)
	s.NoError(err)
	s.Equal(&auction.HighestBid{}, bid)
}

func (s *auctionUsecaseSuite) TestUpdateReservePrice() {
	s.asset.On("OwnerOf", mock.Anything, s.id.ChainId, s.id.AssetContract, s.id.TokenId).Return(seller, nil)
	s.auctions.On("FindOne", mock.Anything, s.id).Return(s.openAuction(baseTime-100, baseTime+1000), nil)
	s.auctions.On("Patch", mock.Anything, s.id, mock.Anything).Return(nil)

	s.NoError(s.uc.UpdateReservePrice(s.ctx, s.id, seller, "300000000000000000"))
	s.auctions.AssertCalled(s.T(), "Patch", mock.Anything, s.id, mock.MatchedBy(func(p *auction.AuctionPatchable) bool {
		return p.ReservePrice != nil && *p.ReservePrice == "300000000000000000"
	}))
}

func (s *auctionUsecaseSuite) TestUpdateReservePriceInvalidNumber() {
	s.ErrorIs(s.uc.UpdateReservePrice(s.ctx, s.id, seller, "not-a-number"), domain.ErrInvalidNumberFormat)
}

func (s *auctionUsecaseSuite) TestReclaimTokenSweepsExcess() {
	s.settings.On("IsAdmin", seller).Return(true)
	other := auction.Id{ChainId: 1, AssetContract: "0x0ther", TokenId: "7"}
	s.auctions.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*auction.Auction{
		s.openAuction(baseTime-100, baseTime+1000),
		{ChainId: other.ChainId, AssetContract: other.AssetContract, TokenId: other.TokenId, PayToken: payToken},
	}, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		ChainId:       s.id.ChainId,
		AssetContract: s.id.AssetContract,
		TokenId:       s.id.TokenId,
		Bidder:        bidder,
		Amount:        "200000000000000000",
	}, nil)
	s.bids.On("FindOne", mock.Anything, other).Return(nil, nil)
	s.payment.On("BalanceOf", mock.Anything, domain.ChainId(1), payToken, operator).
		Return(big.NewInt(500000000000000000), nil)
	s.payment.On("Push", mock.Anything, domain.ChainId(1), payToken, seller, big.NewInt(300000000000000000)).
		Return(domain.TxHash("0x1"), nil)

	swept, err := s.uc.ReclaimToken(s.ctx, seller, 1, payToken)
	s.NoError(err)
	s.Equal("300000000000000000", swept)
}

func (s *auctionUsecaseSuite) TestReclaimTokenNotAdmin() {
	s.settings.On("IsAdmin", bidder).Return(false)
	_, err := s.uc.ReclaimToken(s.ctx, bidder, 1, payToken)
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *auctionUsecaseSuite) TestReclaimTokenNoExcess() {
	s.settings.On("IsAdmin", seller).Return(true)
	s.auctions.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*auction.Auction{
		s.openAuction(baseTime-100, baseTime+1000),
	}, nil)
	s.bids.On("FindOne", mock.Anything, s.id).Return(&auction.HighestBid{
		ChainId:       s.id.ChainId,
		AssetContract: s.id.AssetContract,
		TokenId:       s.id.TokenId,
		Bidder:        bidder,
		Amount:        "200000000000000000",
	}, nil)
	s.payment.On("BalanceOf", mock.Anything, domain.ChainId(1), payToken, operator).
		Return(big.NewInt(200000000000000000), nil)

	swept, err := s.uc.ReclaimToken(s.ctx, seller, 1, payToken)
	s.NoError(err)
	s.Equal("0", swept)
	s.payment.AssertNotCalled(s.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
