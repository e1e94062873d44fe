package domain

import (
	"github.com/pricy-xyz/goauction/base/ctx"
)

type PayTokenId struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is an allow-listed fungible currency auctions can be denominated in
type PayToken struct {
	Name          string  `bson:"name"`
	Symbol        string  `bson:"symbol"`
	TokenDecimals int32   `bson:"tokenDecimals"`
	ChainId       ChainId `bson:"chainId"`
	Address       Address `bson:"address"`
}

func (t *PayToken) ToId() *PayTokenId {
	return &PayTokenId{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Upsert(ctx.Ctx, *PayToken) error
	Remove(ctx.Ctx, ChainId, Address) error
}

// PayTokenUsecase is the token allow-list consulted at auction creation
type PayTokenUsecase interface {
	IsAllowed(ctx.Ctx, ChainId, Address) (bool, error)
	Get(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Register(ctx.Ctx, *PayToken) error
	Unregister(ctx.Ctx, ChainId, Address) error
}
