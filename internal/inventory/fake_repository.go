package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

type pairKey struct {
	userID int
	itemID int
}

// FakeRepository is a stateful in-memory implementation of
// repository.Inventory for integration-style unit tests.
type FakeRepository struct {
	entries map[pairKey]*domain.InventoryEntry
	nextID  int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		entries: make(map[pairKey]*domain.InventoryEntry),
		nextID:  1,
	}
}

func (f *FakeRepository) GetForUser(ctx context.Context, userID, limit, offset int) ([]domain.InventoryEntry, int, error) {
	var all []domain.InventoryEntry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			all = append(all, *entry)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *FakeRepository) GetEntry(ctx context.Context, userID, itemID int) (*domain.InventoryEntry, error) {
	entry, ok := f.entries[pairKey{userID, itemID}]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	cc := *entry
	return &cc, nil
}

func (f *FakeRepository) AddQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	key := pairKey{userID, itemID}
	if entry, ok := f.entries[key]; ok {
		entry.Quantity += quantity
		cc := *entry
		return &cc, nil
	}
	entry := &domain.InventoryEntry{
		ID:        f.nextID,
		UserID:    userID,
		ItemID:    itemID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	f.nextID++
	f.entries[key] = entry
	cc := *entry
	return &cc, nil
}

func (f *FakeRepository) SetQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	entry, ok := f.entries[pairKey{userID, itemID}]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	entry.Quantity = quantity
	cc := *entry
	return &cc, nil
}

func (f *FakeRepository) DeleteEntry(ctx context.Context, userID, itemID int) (bool, error) {
	key := pairKey{userID, itemID}
	if _, ok := f.entries[key]; !ok {
		return false, nil
	}
	delete(f.entries, key)
	return true, nil
}
