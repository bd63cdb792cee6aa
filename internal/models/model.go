package models

import "time"

// Bid represents an accepted bid on an auction item.
// ItemName refers to the item by name only; the item owns its history.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemName  string    `json:"item_name"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AuctionItem represents a listed item together with its bidding state
type AuctionItem struct {
	Name          string       `json:"name"`
	OwnerID       string       `json:"owner_id"`
	ReservedPrice float64      `json:"reserved_price"`
	State         AuctionState `json:"state"`
	CurrentBid    *Bid         `json:"current_bid,omitempty"`
	CurrentPrice  float64      `json:"current_price"`
	BidHistory    []Bid        `json:"bid_history"`
	CreatedAt     time.Time    `json:"created_at"`
}

// AuctionState is the lifecycle position of an item: created -> active -> closed
type AuctionState int

const (
	StateCreated AuctionState = iota
	StateActive
	StateClosed
)

func (s AuctionState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name so JSON payloads stay readable
func (s AuctionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ItemStatus is a consistent view of an item's lifecycle flags, taken from one snapshot
type ItemStatus struct {
	Name       string
	Active     bool
	Finished   bool
	Successful bool
}

// Status returns the item's lifecycle flags
func (i *AuctionItem) Status() ItemStatus {
	return ItemStatus{
		Name:       i.Name,
		Active:     i.IsActive(),
		Finished:   i.IsFinished(),
		Successful: i.IsSuccessful(),
	}
}
