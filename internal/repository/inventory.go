package repository

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// Inventory defines the interface for inventory entry persistence. Identity
// is the (userID, itemID) pair.
type Inventory interface {
	// GetForUser returns a page of entries with item detail expanded plus
	// the user's total distinct-entry count.
	GetForUser(ctx context.Context, userID, limit, offset int) ([]domain.InventoryEntry, int, error)
	GetEntry(ctx context.Context, userID, itemID int) (*domain.InventoryEntry, error)
	// AddQuantity merges quantity into an existing entry by atomic addition,
	// creating the entry when absent. Concurrent adds must not lose updates.
	AddQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error)
	// SetQuantity replaces the stored quantity of an existing entry.
	// Returns domain.ErrEntryNotFound when no entry exists.
	SetQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error)
	// DeleteEntry removes the entry if present and reports whether it existed.
	DeleteEntry(ctx context.Context, userID, itemID int) (bool, error)
}
