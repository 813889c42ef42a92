package repository

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// Item defines the interface for item persistence. List and Search return
// the page of items plus the total count of the full filtered set, which
// pagination metadata depends on.
type Item interface {
	List(ctx context.Context, filter domain.ItemFilter, limit, offset int) ([]domain.Item, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Item, int, error)
	GetByID(ctx context.Context, id int) (*domain.Item, error)
	Exists(ctx context.Context, id int) (bool, error)
	Insert(ctx context.Context, item *domain.Item) (int, error)
	Update(ctx context.Context, id int, update domain.ItemUpdate) (*domain.Item, error)
	Delete(ctx context.Context, id int) (bool, error)
}
