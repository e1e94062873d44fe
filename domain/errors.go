package domain

import "errors"

var (
	// ErrInternalServerError will throw if any Internal Server Error happens
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params are not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidSignature    = errors.New("Invalid signature")

	// engine configuration
	ErrInvalidConfiguration = errors.New("Invalid Platform Fee Recipient")

	// auction creation
	ErrInvalidStartTime     = errors.New("invalid start time")
	ErrEndTimeTooSoon       = errors.New("end time must be greater than start (by 5 minutes)")
	ErrAuctionAlreadyExists = errors.New("auction already started")
	ErrNotOwnerOrApproved   = errors.New("not owner and or contract not approved")
	ErrNonexistentAsset     = errors.New("owner query for nonexistent token")
	ErrInvalidPayToken      = errors.New("invalid pay token")

	// bid admission
	ErrOutsideAuctionWindow = errors.New("bidding outside of the auction window")
	ErrBelowReservePrice    = errors.New("bid cannot be lower than reserve price")
	ErrInsufficientOutbid   = errors.New("failed to outbid highest bidder")
	ErrContractBidder       = errors.New("no contracts permitted")

	// bid withdrawal
	ErrNotHighestBidder = errors.New("you are not the highest bidder")
	ErrWithdrawalLocked = errors.New("can withdraw only after bidWithdrawalLockTime (after auction ended)")

	// settlement / cancel
	ErrAuctionNotEnded   = errors.New("auction not ended")
	ErrNoOpenBids        = errors.New("no open bids")
	ErrReserveNotReached = errors.New("highest bid is below reservePrice")
	ErrSenderNotOwner    = errors.New("sender must be item owner")

	// guard rails
	ErrPaused       = errors.New("contract paused")
	ErrUnauthorized = errors.New("caller is not the owner")
)
