package bidding

import (
	"auction-registry/internal/biddingerrors"
	"auction-registry/internal/models"
	"auction-registry/internal/repository"
	"auction-registry/utils"
	"fmt"
	"time"
)

// AuctionService is the command/query surface of the auction registry.
// Every command takes the calling client's identity explicitly.
type AuctionService struct {
	repo repository.AuctionDB
}

// NewAuctionService creates a new AuctionService backed by repo
func NewAuctionService(repo repository.AuctionDB) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// AddItem lists a new item owned by ownerID in the created state
func (s *AuctionService) AddItem(ownerID, name string, reservedPrice float64) (models.AuctionItem, error) {
	if ownerID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing client ID", biddingerrors.ErrInvalidArgument)
	}

	item, err := models.NewAuctionItem(name, ownerID, reservedPrice)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to add item %s: %w", name, err)
	}

	// snapshot before the registry takes ownership of item
	listed := item.Clone()
	if err := s.repo.CreateItem(item); err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to add item %s: %w", name, err)
	}

	return listed, nil
}

// StartAuction opens bidding on an item. Only the owner may start it.
func (s *AuctionService) StartAuction(clientID, name string) (models.AuctionItem, error) {
	item, err := s.repo.UpdateItem(name, func(item *models.AuctionItem) error {
		if item.OwnerID != clientID {
			return fmt.Errorf("%w - %s cannot start the auction on %s", biddingerrors.ErrForbidden, clientID, name)
		}
		return item.StartAuction()
	})
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to start auction on %s: %w", name, err)
	}
	return item, nil
}

// StopAuction closes bidding on an item for good. Only the owner may stop it.
func (s *AuctionService) StopAuction(clientID, name string) (models.AuctionItem, error) {
	item, err := s.repo.UpdateItem(name, func(item *models.AuctionItem) error {
		if item.OwnerID != clientID {
			return fmt.Errorf("%w - %s cannot stop the auction on %s", biddingerrors.ErrForbidden, clientID, name)
		}
		return item.StopAuction()
	})
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to stop auction on %s: %w", name, err)
	}
	return item, nil
}

// SetReservedPrice changes an item's reserve. Only the owner may change it.
func (s *AuctionService) SetReservedPrice(clientID, name string, price float64) (models.AuctionItem, error) {
	item, err := s.repo.UpdateItem(name, func(item *models.AuctionItem) error {
		if item.OwnerID != clientID {
			return fmt.Errorf("%w - %s cannot change the reserve on %s", biddingerrors.ErrForbidden, clientID, name)
		}
		return item.SetReservedPrice(price)
	})
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to set reserved price on %s: %w", name, err)
	}
	return item, nil
}

// BidOnItem places a bid under bidderID. Owners cannot bid on their own items.
func (s *AuctionService) BidOnItem(bidderID, name string, amount float64) (models.Bid, error) {
	if bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing client ID", biddingerrors.ErrInvalidArgument)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ItemName:  name,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.repo.UpdateItem(name, func(item *models.AuctionItem) error {
		if item.OwnerID == bidderID {
			return fmt.Errorf("%w - %s owns %s", biddingerrors.ErrSelfBid, bidderID, name)
		}
		return item.AddBid(bid)
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to bid on %s by %s: %w", name, bidderID, err)
	}

	return bid, nil
}

// IsActive reports whether the named item is accepting bids; false if unknown
func (s *AuctionService) IsActive(name string) bool {
	item, err := s.repo.GetItem(name)
	return err == nil && item.IsActive()
}

// IsFinished reports whether the named item's auction has closed; false if unknown
func (s *AuctionService) IsFinished(name string) bool {
	item, err := s.repo.GetItem(name)
	return err == nil && item.IsFinished()
}

// IsSuccessful reports whether the named item closed with its reserve met; false if unknown
func (s *AuctionService) IsSuccessful(name string) bool {
	item, err := s.repo.GetItem(name)
	return err == nil && item.IsSuccessful()
}

// ItemStatus reports the named item's lifecycle flags from a single snapshot.
// Unknown names report every flag false.
func (s *AuctionService) ItemStatus(name string) models.ItemStatus {
	item, err := s.repo.GetItem(name)
	if err != nil {
		return models.ItemStatus{Name: name}
	}
	return item.Status()
}

// ActiveItems returns names of items currently being auctioned
func (s *AuctionService) ActiveItems() []string {
	return s.itemNames(func(item *models.AuctionItem) bool { return item.IsActive() })
}

// FinishedItems returns names of items whose auction has closed
func (s *AuctionService) FinishedItems() []string {
	return s.itemNames(func(item *models.AuctionItem) bool { return item.IsFinished() })
}

// InactiveItems returns names of items not being auctioned, finished ones included
func (s *AuctionService) InactiveItems() []string {
	return s.itemNames(func(item *models.AuctionItem) bool { return !item.IsActive() })
}

// AllItems returns every listed item name
func (s *AuctionService) AllItems() []string {
	return s.itemNames(func(*models.AuctionItem) bool { return true })
}

// itemNames filters the registry in creation order
func (s *AuctionService) itemNames(keep func(item *models.AuctionItem) bool) []string {
	items := s.repo.ListItems()
	names := make([]string, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			names = append(names, items[i].Name)
		}
	}
	return names
}

// GetBidHistory returns accepted bids on an item, oldest first
func (s *AuctionService) GetBidHistory(name string) ([]models.Bid, error) {
	item, err := s.repo.GetItem(name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", name, err)
	}
	return item.BidHistory, nil
}

// LatestAction reports the current standing of an item
func (s *AuctionService) LatestAction(name string) (models.ItemReport, error) {
	item, err := s.repo.GetItem(name)
	if err != nil {
		return models.ItemReport{}, fmt.Errorf("service: failed to report on item %s: %w", name, err)
	}
	return models.NewItemReport(item), nil
}
