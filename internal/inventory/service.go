package inventory

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/metrics"
	"github.com/osse101/GameCatalog_Go/internal/repository"
)

// Service defines the interface for inventory ledger operations. Access
// control lives a layer above; callers pass an already-authorized user ID.
type Service interface {
	// GetForUser returns a page of the user's entries with item detail
	// expanded plus the total distinct-entry count.
	GetForUser(ctx context.Context, userID, limit, offset int) ([]domain.InventoryEntry, int, error)
	// AddItem grants quantity of an item, merging into any existing entry.
	AddItem(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error)
	// SetQuantity replaces the stored quantity after verifying the item
	// exists. A quantity <= 0 removes the entry instead and returns a nil
	// entry.
	SetQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error)
	// RemoveItem deletes the entry regardless of quantity.
	RemoveItem(ctx context.Context, userID, itemID int) error
}

// service implements the Service interface
type service struct {
	repo  repository.Inventory
	items repository.Item
}

// NewService creates an inventory service
func NewService(repo repository.Inventory, items repository.Item) Service {
	return &service{repo: repo, items: items}
}

func (s *service) GetForUser(ctx context.Context, userID, limit, offset int) ([]domain.InventoryEntry, int, error) {
	return s.repo.GetForUser(ctx, userID, limit, offset)
}

func (s *service) AddItem(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	log := logger.FromContext(ctx)

	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	// The grant references the catalog, so a dangling item ID is rejected
	// up front rather than surfacing as a constraint violation.
	exists, err := s.items.Exists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrItemNotFound
	}

	entry, err := s.repo.AddQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		log.Error("Failed to add item to inventory", "userID", userID, "itemID", itemID, "error", err)
		return nil, err
	}

	metrics.InventoryGrants.Inc()
	log.Info("Item added to inventory", "userID", userID, "itemID", itemID, "quantity", entry.Quantity)
	return entry, nil
}

func (s *service) SetQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	log := logger.FromContext(ctx)

	// A dangling item ID is an item error, not a ledger error; check the
	// catalog before reporting anything about the entry.
	exists, err := s.items.Exists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrItemNotFound
	}

	if quantity <= 0 {
		// Quantities never reach zero: the entry is removed instead
		found, err := s.repo.DeleteEntry(ctx, userID, itemID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, domain.ErrEntryNotFound
		}
		metrics.InventoryRemovals.Inc()
		log.Info("Inventory entry removed by zero quantity", "userID", userID, "itemID", itemID)
		return nil, nil
	}

	entry, err := s.repo.SetQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		return nil, err
	}

	log.Info("Inventory quantity set", "userID", userID, "itemID", itemID, "quantity", quantity)
	return entry, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID int) error {
	log := logger.FromContext(ctx)

	found, err := s.repo.DeleteEntry(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrEntryNotFound
	}

	metrics.InventoryRemovals.Inc()
	log.Info("Item removed from inventory", "userID", userID, "itemID", itemID)
	return nil
}
