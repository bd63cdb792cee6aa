package models

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestNewItemReport(t *testing.T) {
	t.Run("created item", func(t *testing.T) {
		item, err := NewAuctionItem("Iphone 6", "Ebay", 599.99)
		check.NoError(t, err)

		report := NewItemReport(item.Clone())
		check.Equal(t, StateCreated, report.State)
		check.Nil(t, report.Successful)
		check.Nil(t, report.ReservedPrice)
		check.Nil(t, report.TopAmount)
		check.Equal(t, []string{
			"Item Name: Iphone 6",
			"Seller: Ebay",
			"The item is not being auctioned at this time.",
		}, report.Lines())
	})

	t.Run("active item hides reserve", func(t *testing.T) {
		item := newActiveItem(t, "Maxwell Coffee", 3.99)
		check.NoError(t, item.AddBid(newBid("Maxwell Coffee", "Consumer1", 6)))

		report := NewItemReport(item.Clone())
		check.Equal(t, StateActive, report.State)
		check.Nil(t, report.ReservedPrice)
		check.Equal(t, "Consumer1", report.TopBidder)
		check.Equal(t, 6.0, *report.TopAmount)
		check.Equal(t, "The top bid amount is: 6.00", report.Lines()[4])
	})

	t.Run("active item without bids", func(t *testing.T) {
		item := newActiveItem(t, "Starbucks Coffee", 4.99)

		report := NewItemReport(item.Clone())
		check.Equal(t, "", report.TopBidder)
		check.Equal(t, "No bids have been placed yet.", report.Lines()[3])
	})

	t.Run("closed item", func(t *testing.T) {
		item := newActiveItem(t, "Widget", 10)
		check.NoError(t, item.AddBid(newBid("Widget", "B", 12)))
		check.NoError(t, item.AddBid(newBid("Widget", "B", 15)))
		check.NoError(t, item.StopAuction())

		report := NewItemReport(item.Clone())
		check.True(t, *report.Successful)
		check.Equal(t, 10.0, *report.ReservedPrice)
		check.Equal(t, 15.0, *report.FinalAmount)
		check.Equal(t, "B", report.Winner)
		check.Equal(t, []string{
			"Item Name: Widget",
			"Seller: owner",
			"Item has finished auctioning.",
			"The auction was a success! The item was sold.",
			"The reserved price was: 10.00",
			"The final bid amount was: 15.00",
			"Sold to: B",
		}, report.Lines())
	})

	t.Run("closed item without bids", func(t *testing.T) {
		item := newActiveItem(t, "Gadget", 100)
		check.NoError(t, item.StopAuction())

		report := NewItemReport(item.Clone())
		check.False(t, *report.Successful)
		check.Equal(t, "", report.Winner)
		lines := report.Lines()
		check.Equal(t, "The auction was a failure...", lines[3])
		check.Equal(t, "No bids were placed.", lines[len(lines)-1])
	})
}
