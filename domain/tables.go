package domain

// Table is a mongo collection name
type Table string

const (
	TableAuctions      Table = "auctions"
	TableHighestBids   Table = "highest_bids"
	TableAuctionEvents Table = "auction_events"
	TableSettings      Table = "engine_settings"
	TablePayTokens     Table = "pay_tokens"
	TableHealthCheck   Table = "health_check"
)
