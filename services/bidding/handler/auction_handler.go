package handler

import (
	"fmt"
	"net/http"

	"auction-registry/internal/biddingerrors"
	model "auction-registry/internal/models"
	"auction-registry/services/bidding/helpers"
	"auction-registry/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	AddItem(ownerID, name string, reservedPrice float64) (model.AuctionItem, error)
	StartAuction(clientID, name string) (model.AuctionItem, error)
	StopAuction(clientID, name string) (model.AuctionItem, error)
	SetReservedPrice(clientID, name string, price float64) (model.AuctionItem, error)
	BidOnItem(bidderID, name string, amount float64) (model.Bid, error)
	IsActive(name string) bool
	IsFinished(name string) bool
	IsSuccessful(name string) bool
	ItemStatus(name string) model.ItemStatus
	ActiveItems() []string
	FinishedItems() []string
	InactiveItems() []string
	AllItems() []string
	GetBidHistory(name string) ([]model.Bid, error)
	LatestAction(name string) (model.ItemReport, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// AddItemHandler handles POST /items
func (h *AuctionHandler) AddItemHandler(c *gin.Context) {
	clientID, ok := helpers.RequireClientID(c, "AddItemHandler")
	if !ok {
		return
	}

	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	item, err := h.service.AddItem(clientID, req.Name, *req.ReservedPrice)
	if err != nil {
		helpers.HandleServiceError(c, "AddItemHandler", err, map[string]any{
			"item_name": req.Name,
			"client_id": clientID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item), "item added successfully")
	helpers.LogSuccess("AddItemHandler", "item added successfully", map[string]any{
		"item_name":      item.Name,
		"owner_id":       item.OwnerID,
		"reserved_price": item.ReservedPrice,
	})
}

// StartAuctionHandler handles POST /items/:name/start
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	h.transition(c, "StartAuctionHandler", "auction started successfully", h.service.StartAuction)
}

// StopAuctionHandler handles POST /items/:name/stop
func (h *AuctionHandler) StopAuctionHandler(c *gin.Context) {
	h.transition(c, "StopAuctionHandler", "auction stopped successfully", h.service.StopAuction)
}

func (h *AuctionHandler) transition(c *gin.Context, handlerName, message string, apply func(clientID, name string) (model.AuctionItem, error)) {
	clientID, ok := helpers.RequireClientID(c, handlerName)
	if !ok {
		return
	}

	name := c.Param("name")
	item, err := apply(clientID, name)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{
			"item_name": name,
			"client_id": clientID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item), message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"item_name": name,
		"state":     item.State.String(),
	})
}

// SetReservedPriceHandler handles PUT /items/:name/reserve
func (h *AuctionHandler) SetReservedPriceHandler(c *gin.Context) {
	clientID, ok := helpers.RequireClientID(c, "SetReservedPriceHandler")
	if !ok {
		return
	}

	var req helpers.ReservedPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetReservedPriceHandler", err)
		return
	}

	name := c.Param("name")
	item, err := h.service.SetReservedPrice(clientID, name, *req.ReservedPrice)
	if err != nil {
		helpers.HandleServiceError(c, "SetReservedPriceHandler", err, map[string]any{
			"item_name": name,
			"client_id": clientID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item), "reserved price updated successfully")
	helpers.LogSuccess("SetReservedPriceHandler", "reserved price updated successfully", map[string]any{
		"item_name":      name,
		"reserved_price": item.ReservedPrice,
	})
}

// PlaceBidHandler handles POST /items/:name/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	clientID, ok := helpers.RequireClientID(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	name := c.Param("name")
	bid, err := h.service.BidOnItem(clientID, name, *req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"item_name": name,
			"client_id": clientID,
			"amount":    *req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    bid.BidID,
		"item_name": bid.ItemName,
		"bidder_id": bid.BidderID,
		"amount":    bid.Amount,
	})
}

// GetBidsHandler handles GET /items/:name/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	name := c.Param("name")
	bids, err := h.service.GetBidHistory(name)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsHandler", err, map[string]any{"item_name": name})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.NewBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"item_name": name,
		"count":     len(resp),
	})
}

// ListItemsHandler handles GET /items?status=active|finished|inactive
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	status := c.Query("status")

	var names []string
	switch status {
	case "":
		names = h.service.AllItems()
	case "active":
		names = h.service.ActiveItems()
	case "finished":
		names = h.service.FinishedItems()
	case "inactive":
		names = h.service.InactiveItems()
	default:
		err := fmt.Errorf("%w - unknown status filter %q", biddingerrors.ErrInvalidArgument, status)
		helpers.HandleServiceError(c, "ListItemsHandler", err, map[string]any{"status": status})
		return
	}

	if names == nil {
		names = []string{}
	}

	utils.JSONResponse(c, http.StatusOK, names, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"status":      status,
		"items_count": len(names),
	})
}

// GetItemStatusHandler handles GET /items/:name/status. Unknown names report all false.
func (h *AuctionHandler) GetItemStatusHandler(c *gin.Context) {
	status := h.service.ItemStatus(c.Param("name"))
	resp := helpers.ItemStatusResponse{
		Name:       status.Name,
		Active:     status.Active,
		Finished:   status.Finished,
		Successful: status.Successful,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "item status retrieved successfully")
}

// LatestActionHandler handles GET /items/:name
func (h *AuctionHandler) LatestActionHandler(c *gin.Context) {
	name := c.Param("name")
	report, err := h.service.LatestAction(name)
	if err != nil {
		helpers.HandleServiceError(c, "LatestActionHandler", err, map[string]any{"item_name": name})
		return
	}

	resp := helpers.LatestActionResponse{ItemReport: report, Lines: report.Lines()}
	utils.JSONResponse(c, http.StatusOK, resp, "latest action retrieved successfully")
	helpers.LogSuccess("LatestActionHandler", "latest action retrieved successfully", map[string]any{
		"item_name": name,
		"state":     report.State.String(),
	})
}
