package settings

import (
	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
)

// Settings is the process-wide, admin-mutable engine configuration.
type Settings struct {
	PlatformFeeRecipient domain.Address `json:"platformFeeRecipient" bson:"platformFeeRecipient"`
	// fee rate in basis points, taken from the winning bid's excess over reserve
	PlatformFeeBps int64 `json:"platformFeeBps" bson:"platformFeeBps"`
	// cooldown after auction end before the highest bidder may self-withdraw
	BidWithdrawalLockSeconds int64 `json:"bidWithdrawalLockSeconds" bson:"bidWithdrawalLockSeconds"`
	// minimum raise over the standing highest bid, in smallest token units
	MinBidIncrement string `json:"minBidIncrement" bson:"minBidIncrement"`
	Paused          bool   `json:"paused" bson:"paused"`
}

type Patchable struct {
	PlatformFeeRecipient     *domain.Address `bson:"platformFeeRecipient,omitempty"`
	PlatformFeeBps           *int64          `bson:"platformFeeBps,omitempty"`
	BidWithdrawalLockSeconds *int64          `bson:"bidWithdrawalLockSeconds,omitempty"`
	MinBidIncrement          *string         `bson:"minBidIncrement,omitempty"`
	Paused                   *bool           `bson:"paused,omitempty"`
}

type Repo interface {
	Get(ctx.Ctx) (*Settings, error)
	// Init seeds the record if absent, leaving an existing one untouched
	Init(ctx.Ctx, *Settings) error
	Patch(ctx.Ctx, *Patchable) error
}

type Usecase interface {
	Get(ctx.Ctx) (*Settings, error)
	IsAdmin(domain.Address) bool
	UpdatePlatformFee(c ctx.Ctx, caller domain.Address, bps int64) error
	UpdatePlatformFeeRecipient(c ctx.Ctx, caller, recipient domain.Address) error
	UpdateBidWithdrawalLockTime(c ctx.Ctx, caller domain.Address, seconds int64) error
	UpdateMinBidIncrement(c ctx.Ctx, caller domain.Address, increment string) error
	TogglePause(c ctx.Ctx, caller domain.Address) (bool, error)
}
