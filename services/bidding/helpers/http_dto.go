package helpers

import (
	"time"

	model "auction-registry/internal/models"
)

// ClientIDHeader carries the calling client's identity
const ClientIDHeader = "X-Client-ID"

// Request/Response DTOs
type AddItemRequest struct {
	Name          string   `json:"name" binding:"required"`
	ReservedPrice *float64 `json:"reserved_price" binding:"required"`
}

type PlaceBidRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

type ReservedPriceRequest struct {
	ReservedPrice *float64 `json:"reserved_price" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemName  string  `json:"item_name"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// ItemResponse is the owner's view of an item, reserve included
type ItemResponse struct {
	Name          string  `json:"name"`
	OwnerID       string  `json:"owner_id"`
	State         string  `json:"state"`
	ReservedPrice float64 `json:"reserved_price"`
	CurrentPrice  float64 `json:"current_price"`
	BidCount      int     `json:"bid_count"`
}

type ItemStatusResponse struct {
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	Finished   bool   `json:"finished"`
	Successful bool   `json:"successful"`
}

type LatestActionResponse struct {
	model.ItemReport
	Lines []string `json:"lines"`
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		ItemName:  bid.ItemName,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewItemResponse(item model.AuctionItem) ItemResponse {
	return ItemResponse{
		Name:          item.Name,
		OwnerID:       item.OwnerID,
		State:         item.State.String(),
		ReservedPrice: item.ReservedPrice,
		CurrentPrice:  item.CurrentPrice,
		BidCount:      len(item.BidHistory),
	}
}
