// Package catalog is the request-facing orchestrator. It owns the concerns
// the feature services stay free of: pagination envelope assembly and the
// owner-or-admin check in front of user-scoped inventory operations.
package catalog

import (
	"context"

	"github.com/osse101/GameCatalog_Go/internal/access"
	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/inventory"
	"github.com/osse101/GameCatalog_Go/internal/item"
	"github.com/osse101/GameCatalog_Go/internal/utils"
)

// Service defines the paginated, access-checked catalog surface
type Service interface {
	ListItems(ctx context.Context, filter domain.ItemFilter, page, size int) (*domain.Page[domain.Item], error)
	SearchItems(ctx context.Context, query string, page, size int) (*domain.Page[domain.Item], error)
	GetInventory(ctx context.Context, actor domain.Actor, userID, page, size int) (*domain.Page[domain.InventoryEntry], error)
	AddInventoryItem(ctx context.Context, actor domain.Actor, userID, itemID, quantity int) (*domain.InventoryEntry, error)
	SetInventoryQuantity(ctx context.Context, actor domain.Actor, userID, itemID, quantity int) (*domain.InventoryEntry, error)
	RemoveInventoryItem(ctx context.Context, actor domain.Actor, userID, itemID int) error
}

// service implements the Service interface
type service struct {
	items     item.Service
	inventory inventory.Service
	policy    access.Policy
}

// NewService creates a catalog orchestrator
func NewService(items item.Service, inv inventory.Service, policy access.Policy) Service {
	return &service{items: items, inventory: inv, policy: policy}
}

func (s *service) ListItems(ctx context.Context, filter domain.ItemFilter, page, size int) (*domain.Page[domain.Item], error) {
	limit, offset, currentPage := utils.GetPagination(page, size)
	items, total, err := s.items.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return envelope(items, total, limit, currentPage), nil
}

func (s *service) SearchItems(ctx context.Context, query string, page, size int) (*domain.Page[domain.Item], error) {
	limit, offset, currentPage := utils.GetPagination(page, size)
	items, total, err := s.items.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return envelope(items, total, limit, currentPage), nil
}

func (s *service) GetInventory(ctx context.Context, actor domain.Actor, userID, page, size int) (*domain.Page[domain.InventoryEntry], error) {
	if err := s.policy.CheckUserScope(actor, userID); err != nil {
		return nil, err
	}
	limit, offset, currentPage := utils.GetPagination(page, size)
	entries, total, err := s.inventory.GetForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return envelope(entries, total, limit, currentPage), nil
}

func (s *service) AddInventoryItem(ctx context.Context, actor domain.Actor, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	if err := s.policy.CheckUserScope(actor, userID); err != nil {
		return nil, err
	}
	return s.inventory.AddItem(ctx, userID, itemID, quantity)
}

func (s *service) SetInventoryQuantity(ctx context.Context, actor domain.Actor, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	if err := s.policy.CheckUserScope(actor, userID); err != nil {
		return nil, err
	}
	return s.inventory.SetQuantity(ctx, userID, itemID, quantity)
}

func (s *service) RemoveInventoryItem(ctx context.Context, actor domain.Actor, userID, itemID int) error {
	if err := s.policy.CheckUserScope(actor, userID); err != nil {
		return err
	}
	return s.inventory.RemoveItem(ctx, userID, itemID)
}

// envelope wraps a page of results. Items is always non-nil so empty pages
// serialize as [] rather than null.
func envelope[T any](items []T, total, limit, currentPage int) *domain.Page[T] {
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{
		Items: items,
		Meta:  utils.NewPageMeta(total, limit, currentPage),
	}
}
