package domain

import "time"

// InventoryEntry is the weighted many-to-many edge between a user and an
// item. Identity is the (UserID, ItemID) pair, unique per pair. Quantity is
// always >= 1: a quantity that would reach zero deletes the row instead.
type InventoryEntry struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userid" db:"userid"`
	ItemID    int       `json:"itemid" db:"itemid"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Item *Item `json:"item,omitempty"`
}
