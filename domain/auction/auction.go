package auction

import (
	"math/big"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
)

// MinDuration is the minimum auction window length in seconds
const MinDuration int64 = 300

type Id struct {
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// Auction is the registry record for one asset under auction. The seller is
// not cached here: ownership is re-read from the asset registry on every
// settlement or cancel, which is also how a resulted auction is detected
// after the asset moved to the winner.
type Auction struct {
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	PayToken      domain.Address `json:"payToken" bson:"payToken"`
	ReservePrice  string         `json:"reservePrice" bson:"reservePrice"`
	MinBidReserve bool           `json:"minBidReserve" bson:"minBidReserve"`
	// unix seconds, the engine time unit
	StartTime int64 `json:"startTime" bson:"startTime"`
	EndTime   int64 `json:"endTime" bson:"endTime"`
	Resulted  bool  `json:"resulted" bson:"resulted"`
}

func (a *Auction) ToId() Id {
	return Id{
		ChainId:       a.ChainId,
		AssetContract: a.AssetContract,
		TokenId:       a.TokenId,
	}
}

type AuctionPatchable struct {
	ReservePrice *string `bson:"reservePrice,omitempty"`
	Resulted     *bool   `bson:"resulted,omitempty"`
}

// HighestBid tracks the escrowed winning bid for an asset. Amount is in the
// pay token's smallest unit; "0" means no bid and must always equal the funds
// actually held by the escrow account for this key.
type HighestBid struct {
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	Bidder        domain.Address `json:"bidder" bson:"bidder"`
	Amount        string         `json:"amount" bson:"amount"`
	LastBidTime   int64          `json:"lastBidTime" bson:"lastBidTime"`
}

func (b *HighestBid) ToId() Id {
	return Id{
		ChainId:       b.ChainId,
		AssetContract: b.AssetContract,
		TokenId:       b.TokenId,
	}
}

type findAllOptions struct {
	ChainId  *domain.ChainId
	PayToken *domain.Address
	Resulted *bool
}

type FindAllOptionsFunc func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *findAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithPayToken(payToken domain.Address) FindAllOptionsFunc {
	return func(options *findAllOptions) error {
		payToken = payToken.ToLower()
		options.PayToken = &payToken
		return nil
	}
}

func WithResulted(resulted bool) FindAllOptionsFunc {
	return func(options *findAllOptions) error {
		options.Resulted = &resulted
		return nil
	}
}

// Repo stores auction records. FindOne returns (nil, nil) when no record
// exists for the key.
type Repo interface {
	FindOne(ctx.Ctx, Id) (*Auction, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Auction, error)
	Create(ctx.Ctx, *Auction) error
	Patch(ctx.Ctx, Id, *AuctionPatchable) error
	Delete(ctx.Ctx, Id) error
}

// HighestBidRepo stores the escrow record per asset key. FindOne returns
// (nil, nil) when no bid exists.
type HighestBidRepo interface {
	FindOne(ctx.Ctx, Id) (*HighestBid, error)
	Upsert(ctx.Ctx, *HighestBid) error
	Delete(ctx.Ctx, Id) error
}

type CreateAuctionParams struct {
	Id            Id
	Seller        domain.Address
	PayToken      domain.Address
	ReservePrice  string
	MinBidReserve bool
	StartTime     int64
	EndTime       int64
}

// Usecase is the serialized auction engine. Every state-mutating operation
// is atomic with respect to all others.
type Usecase interface {
	CreateAuction(ctx.Ctx, CreateAuctionParams) error
	PlaceBid(c ctx.Ctx, id Id, bidder domain.Address, amount string) error
	WithdrawBid(c ctx.Ctx, id Id, caller domain.Address) error
	ResultAuction(c ctx.Ctx, id Id, caller domain.Address) (*Event, error)
	CancelAuction(c ctx.Ctx, id Id, caller domain.Address) error
	UpdateReservePrice(c ctx.Ctx, id Id, caller domain.Address, reservePrice string) error
	GetAuction(c ctx.Ctx, id Id) (*Auction, error)
	GetHighestBid(c ctx.Ctx, id Id) (*HighestBid, error)
	ReclaimToken(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, token domain.Address) (string, error)
}

// AssetOwnership is the external ERC-721-like registry the engine validates
// against and settles through.
type AssetOwnership interface {
	// OwnerOf fails with domain.ErrNonexistentAsset for an unknown token id
	OwnerOf(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	IsApproved(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (bool, error)
	Transfer(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) (domain.TxHash, error)
}

// PaymentToken moves the fungible currency in and out of the escrow account.
type PaymentToken interface {
	Pull(c ctx.Ctx, chainId domain.ChainId, token, from domain.Address, amount *big.Int) (domain.TxHash, error)
	Push(c ctx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) (domain.TxHash, error)
	BalanceOf(c ctx.Ctx, chainId domain.ChainId, token, account domain.Address) (*big.Int, error)
}

// AccountInspector classifies caller accounts. Contract accounts are barred
// from bidding.
type AccountInspector interface {
	IsContract(c ctx.Ctx, chainId domain.ChainId, account domain.Address) (bool, error)
}
