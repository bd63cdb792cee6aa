package biddingerrors

import "errors"

// Registry-level errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrDuplicateItem   = errors.New("item already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Authorization errors
var (
	ErrForbidden = errors.New("only the item owner may do this")
	ErrSelfBid   = errors.New("owner cannot bid on own item")
)

// Auction lifecycle and bidding errors
var (
	ErrInvalidTransition = errors.New("invalid auction state transition")
	ErrAuctionNotOpen    = errors.New("item is not currently up for bidding")
	ErrAuctionClosed     = errors.New("auction has finished")
	ErrBidTooLow         = errors.New("bid amount too low")
)
