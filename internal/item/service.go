package item

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/metrics"
	"github.com/osse101/GameCatalog_Go/internal/repository"
)

// metadataCacheSize bounds the in-memory item cache. Item lookups dominate
// read traffic (every inventory row expands an item), so hot entries stay
// resident while the LRU evicts the long tail.
const metadataCacheSize = 1024

// Service defines the interface for item catalog operations
type Service interface {
	// List applies the conjunctive filter and returns the page plus the
	// total count of the full filtered set.
	List(ctx context.Context, filter domain.ItemFilter, limit, offset int) ([]domain.Item, int, error)
	// Search matches name or description case-insensitively. A blank query
	// fails validation before any storage access.
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Item, int, error)
	GetByID(ctx context.Context, id int) (*domain.Item, error)
	Create(ctx context.Context, item domain.Item) (*domain.Item, error)
	Update(ctx context.Context, id int, update domain.ItemUpdate) (*domain.Item, error)
	Delete(ctx context.Context, id int) error
}

// service implements the Service interface
type service struct {
	repo  repository.Item
	cache *lru.Cache[int, domain.Item]
}

// NewService creates an item service with an LRU metadata cache
func NewService(repo repository.Item) Service {
	cache, err := lru.New[int, domain.Item](metadataCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(fmt.Sprintf("item cache: %v", err))
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) List(ctx context.Context, filter domain.ItemFilter, limit, offset int) ([]domain.Item, int, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

func (s *service) Search(ctx context.Context, query string, limit, offset int) ([]domain.Item, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, domain.ErrEmptySearchQuery
	}
	metrics.SearchesPerformed.Inc()
	return s.repo.Search(ctx, query, limit, offset)
}

func (s *service) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	if cached, ok := s.cache.Get(id); ok {
		metrics.ItemCacheHits.Inc()
		return &cached, nil
	}
	metrics.ItemCacheMisses.Inc()

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, *item)
	return item, nil
}

func (s *service) Create(ctx context.Context, item domain.Item) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if item.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrInvalidInput)
	}
	if item.LevelReq == 0 {
		item.LevelReq = 1
	}
	if item.LevelReq < 1 {
		return nil, fmt.Errorf("%w: level requirement must be >= 1", domain.ErrInvalidInput)
	}

	id, err := s.repo.Insert(ctx, &item)
	if err != nil {
		log.Error("Failed to create item", "name", item.Name, "error", err)
		return nil, err
	}

	metrics.ItemsCreated.Inc()
	log.Info("Item created", "id", id, "name", item.Name)
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int, update domain.ItemUpdate) (*domain.Item, error) {
	if update.Price != nil && *update.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrInvalidInput)
	}
	if update.LevelReq != nil && *update.LevelReq < 1 {
		return nil, fmt.Errorf("%w: level requirement must be >= 1", domain.ErrInvalidInput)
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.cache.Remove(id)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	log := logger.FromContext(ctx)

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrItemNotFound
	}
	s.cache.Remove(id)

	metrics.ItemsDeleted.Inc()
	log.Info("Item deleted", "id", id)
	return nil
}
