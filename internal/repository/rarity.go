package repository

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// Rarity defines the interface for rarity reference data. Rarities are
// static seed data; there is no mutation path.
type Rarity interface {
	GetAll(ctx context.Context) ([]domain.Rarity, error)
	GetByID(ctx context.Context, id int) (*domain.Rarity, error)
}
