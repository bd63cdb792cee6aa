package models

import (
	"fmt"
	"time"

	"auction-registry/internal/biddingerrors"
)

// NewAuctionItem creates an item in the created state owned by ownerID
func NewAuctionItem(name, ownerID string, reservedPrice float64) (*AuctionItem, error) {
	if !isFinite(reservedPrice) || reservedPrice < 0 {
		return nil, fmt.Errorf("new item %s: %w - reserved price must be non-negative", name, biddingerrors.ErrInvalidArgument)
	}

	return &AuctionItem{
		Name:          name,
		OwnerID:       ownerID,
		ReservedPrice: reservedPrice,
		State:         StateCreated,
		BidHistory:    []Bid{},
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// IsActive reports whether the item is accepting bids
func (i *AuctionItem) IsActive() bool {
	return i.State == StateActive
}

// IsFinished reports whether the auction has been stopped. Closed is terminal.
func (i *AuctionItem) IsFinished() bool {
	return i.State == StateClosed
}

// IsSuccessful reports whether the auction closed with the reserve price met
func (i *AuctionItem) IsSuccessful() bool {
	return i.IsFinished() && AmountMeets(i.CurrentPrice, i.ReservedPrice)
}

// StartAuction opens bidding. Only legal from the created state.
func (i *AuctionItem) StartAuction() error {
	if i.State != StateCreated {
		return fmt.Errorf("start auction on %s: %w - item is %s", i.Name, biddingerrors.ErrInvalidTransition, i.State)
	}
	i.State = StateActive
	return nil
}

// StopAuction closes bidding for good. Only legal from the active state.
func (i *AuctionItem) StopAuction() error {
	if i.State != StateActive {
		return fmt.Errorf("stop auction on %s: %w - item is %s", i.Name, biddingerrors.ErrInvalidTransition, i.State)
	}
	i.State = StateClosed
	return nil
}

// SetReservedPrice changes the reserve. Negative prices are rejected, and
// the reserve is locked once the auction has finished.
func (i *AuctionItem) SetReservedPrice(price float64) error {
	if !isFinite(price) || price < 0 {
		return fmt.Errorf("set reserved price on %s: %w - reserved price must be non-negative", i.Name, biddingerrors.ErrInvalidArgument)
	}
	if i.IsFinished() {
		return fmt.Errorf("set reserved price on %s: %w", i.Name, biddingerrors.ErrAuctionClosed)
	}
	i.ReservedPrice = price
	return nil
}

// AddBid accepts bid iff the item is active and the amount is strictly
// above the current price (which starts at 0). On rejection nothing changes.
func (i *AuctionItem) AddBid(bid Bid) error {
	if !i.IsActive() {
		return fmt.Errorf("add bid on %s: %w", i.Name, biddingerrors.ErrAuctionNotOpen)
	}
	if !isFinite(bid.Amount) {
		return fmt.Errorf("add bid on %s: %w - amount must be a finite number", i.Name, biddingerrors.ErrInvalidArgument)
	}
	if !AmountExceeds(bid.Amount, i.CurrentPrice) {
		return fmt.Errorf("add bid on %s: %w - bid amount needs to be higher than %s", i.Name, biddingerrors.ErrBidTooLow, FormatAmount(i.CurrentPrice))
	}

	i.BidHistory = append(i.BidHistory, bid)
	accepted := bid
	i.CurrentBid = &accepted
	i.CurrentPrice = bid.Amount
	return nil
}

// Clone returns a deep copy safe to hand out of the registry
func (i *AuctionItem) Clone() AuctionItem {
	c := *i
	c.BidHistory = append([]Bid(nil), i.BidHistory...)
	if c.BidHistory == nil {
		c.BidHistory = []Bid{}
	}
	if i.CurrentBid != nil {
		b := *i.CurrentBid
		c.CurrentBid = &b
	}
	return c
}
