package auction

import (
	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
)

type EventType string

const (
	EventTypeCreated      EventType = "auctionCreated"
	EventTypeBidPlaced    EventType = "bidPlaced"
	EventTypeBidRefunded  EventType = "bidRefunded"
	EventTypeBidWithdrawn EventType = "bidWithdrawn"
	EventTypeResulted     EventType = "auctionResulted"
	EventTypeCancelled    EventType = "auctionCancelled"
)

// Event is the engine's outward notification record, persisted for indexers
// and UIs. Amount semantics depend on Type; for auctionResulted it is the
// winning bid and Account is the winner.
type Event struct {
	EventId       string         `json:"eventId" bson:"eventId"`
	Type          EventType      `json:"type" bson:"type"`
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	Account       domain.Address `json:"account" bson:"account"`
	Amount        string         `json:"amount" bson:"amount"`
	// Amount rendered in whole-token units for display, e.g. "0.4"
	DisplayAmount string `json:"displayAmount" bson:"displayAmount"`
	Time          int64  `json:"time" bson:"time"`
}

type EventRepo interface {
	Insert(ctx.Ctx, *Event) error
	FindAllByAsset(ctx.Ctx, Id) ([]*Event, error)
}
