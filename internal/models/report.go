package models

// ItemReport is the read-only latest-action view of an item. The reserve
// price is only disclosed once the auction has finished.
type ItemReport struct {
	ItemName      string       `json:"item_name"`
	Seller        string       `json:"seller"`
	State         AuctionState `json:"state"`
	Successful    *bool        `json:"successful,omitempty"`
	ReservedPrice *float64     `json:"reserved_price,omitempty"`
	FinalAmount   *float64     `json:"final_amount,omitempty"`
	Winner        string       `json:"winner,omitempty"`
	TopBidder     string       `json:"top_bidder,omitempty"`
	TopAmount     *float64     `json:"top_amount,omitempty"`
}

// NewItemReport projects an item snapshot into its report
func NewItemReport(item AuctionItem) ItemReport {
	report := ItemReport{
		ItemName: item.Name,
		Seller:   item.OwnerID,
		State:    item.State,
	}

	bidder := ""
	if item.CurrentBid != nil {
		bidder = item.CurrentBid.BidderID
	}
	price := item.CurrentPrice

	switch item.State {
	case StateClosed:
		successful := item.IsSuccessful()
		reserve := item.ReservedPrice
		report.Successful = &successful
		report.ReservedPrice = &reserve
		report.FinalAmount = &price
		report.Winner = bidder
	case StateActive:
		report.TopBidder = bidder
		report.TopAmount = &price
	}

	return report
}

// Lines renders the report for console output
func (r ItemReport) Lines() []string {
	lines := []string{
		"Item Name: " + r.ItemName,
		"Seller: " + r.Seller,
	}

	switch r.State {
	case StateClosed:
		lines = append(lines, "Item has finished auctioning.")
		if r.Successful != nil && *r.Successful {
			lines = append(lines, "The auction was a success! The item was sold.")
		} else {
			lines = append(lines, "The auction was a failure...")
		}
		lines = append(lines,
			"The reserved price was: "+FormatAmount(deref(r.ReservedPrice)),
			"The final bid amount was: "+FormatAmount(deref(r.FinalAmount)),
		)
		if r.Winner != "" {
			lines = append(lines, "Sold to: "+r.Winner)
		} else {
			lines = append(lines, "No bids were placed.")
		}
	case StateActive:
		lines = append(lines, "The item is currently being auctioned.")
		if r.TopBidder != "" {
			lines = append(lines,
				"Top bidder is: "+r.TopBidder,
				"The top bid amount is: "+FormatAmount(deref(r.TopAmount)),
			)
		} else {
			lines = append(lines, "No bids have been placed yet.")
		}
	default:
		lines = append(lines, "The item is not being auctioned at this time.")
	}

	return lines
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
