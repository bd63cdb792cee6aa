package server

import (
	handler "auction-registry/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	items := router.Group("/items")
	{
		items.POST("", auctionHandler.AddItemHandler)
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:name", auctionHandler.LatestActionHandler)
		items.GET("/:name/status", auctionHandler.GetItemStatusHandler)
		items.GET("/:name/bids", auctionHandler.GetBidsHandler)
		items.POST("/:name/bids", auctionHandler.PlaceBidHandler)
		items.POST("/:name/start", auctionHandler.StartAuctionHandler)
		items.POST("/:name/stop", auctionHandler.StopAuctionHandler)
		items.PUT("/:name/reserve", auctionHandler.SetReservedPriceHandler)
	}

	return router
}
