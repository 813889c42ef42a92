package repository

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// Category defines the interface for category persistence.
// Lookups return flat records; tree expansion is the category service's job.
type Category interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetRoots(ctx context.Context) ([]domain.Category, error)
	GetChildren(ctx context.Context, parentID int) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) (int, error)
	Update(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error)
	// Delete removes the row only. Children keep their parent reference and
	// items keep their category reference; no cascade or repair.
	Delete(ctx context.Context, id int) (bool, error)
}
