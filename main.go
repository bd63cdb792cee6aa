package main

import (
	bidding "auction-registry/internal/biddingService"
	"auction-registry/internal/repository"
	"auction-registry/internal/server"
	"auction-registry/utils"
	"fmt"
	"os"
	"strconv"
)

// seedListing is a demo item listed (and optionally opened) at startup
type seedListing struct {
	owner         string
	name          string
	reservedPrice float64
	start         bool
}

func main() {

	repo := repository.NewMemoryRepo()

	auctionSvc := bidding.NewAuctionService(repo)

	if seedEnabled() {
		prepopulateItems(auctionSvc)
	}

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	utils.Info("Starting auction server", map[string]any{"port": port})
	if err := router.Run(port); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"port": port, "error": err.Error()})
	}
}

// prepopulateItems lists sample items through the service so ownership rules apply
func prepopulateItems(svc *bidding.AuctionService) {
	listings := []seedListing{
		{owner: "Ebay", name: "Maxwell Coffee", reservedPrice: 3.99, start: true},
		{owner: "Ebay", name: "Starbucks Coffee", reservedPrice: 4.99, start: true},
		{owner: "Ebay", name: "Iphone 6", reservedPrice: 599.99},
	}

	for _, l := range listings {
		if _, err := svc.AddItem(l.owner, l.name, l.reservedPrice); err != nil {
			utils.Warn("seed: failed to add item", map[string]any{"item_name": l.name, "error": err.Error()})
			continue
		}
		if !l.start {
			continue
		}
		if _, err := svc.StartAuction(l.owner, l.name); err != nil {
			utils.Warn("seed: failed to start auction", map[string]any{"item_name": l.name, "error": err.Error()})
		}
	}
}

// seedEnabled reads SEED_ITEMS; listings are seeded unless it parses as false
func seedEnabled() bool {
	v := os.Getenv("SEED_ITEMS")
	if v == "" {
		return true
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		utils.Warn("invalid SEED_ITEMS value, seeding anyway", map[string]any{"value": v})
		return true
	}
	return enabled
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
