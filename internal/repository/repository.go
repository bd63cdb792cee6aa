package repository

import (
	"auction-registry/internal/biddingerrors"
	model "auction-registry/internal/models"
	"fmt"
	"sync"
)

// AuctionDB defines the item registry used by the auction service
type AuctionDB interface {
	CreateItem(item *model.AuctionItem) error
	GetItem(name string) (model.AuctionItem, error)
	UpdateItem(name string, mutate func(item *model.AuctionItem) error) (model.AuctionItem, error)
	ListItems() []model.AuctionItem
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// UpdateItem runs its mutation under the write lock, so check-then-mutate
// sequences (start, stop, bid) are atomic.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]*model.AuctionItem // key: item name -> value: item
	order []string                      // item names in creation order
}

// NewMemoryRepo creates a new, empty in-memory registry
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items: make(map[string]*model.AuctionItem),
	}
}

// CreateItem inserts a new item; names are unique
func (r *MemoryRepo) CreateItem(item *model.AuctionItem) error {
	if item == nil {
		return fmt.Errorf("create item: %w - nil item", biddingerrors.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Name]; ok {
		return fmt.Errorf("create item %s: %w", item.Name, biddingerrors.ErrDuplicateItem)
	}

	r.items[item.Name] = item
	r.order = append(r.order, item.Name)
	return nil
}

// GetItem returns a snapshot of the named item
func (r *MemoryRepo) GetItem(name string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get item %s: %w", name, biddingerrors.ErrItemNotFound)
	}
	return item.Clone(), nil
}

// UpdateItem applies mutate to the named item while holding the write lock.
// The returned snapshot reflects the item after mutate, whether or not it failed.
func (r *MemoryRepo) UpdateItem(name string, mutate func(item *model.AuctionItem) error) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[name]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("update item %s: %w", name, biddingerrors.ErrItemNotFound)
	}

	err := mutate(item)
	return item.Clone(), err
}

// ListItems returns snapshots of every item in creation order
func (r *MemoryRepo) ListItems() []model.AuctionItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.AuctionItem, 0, len(r.order))
	for _, name := range r.order {
		items = append(items, r.items[name].Clone())
	}
	return items
}
