package item

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Item
// for integration-style unit tests. It counts storage calls so tests can
// assert on cache hits and short-circuited validation.
type FakeRepository struct {
	items  map[int]*domain.Item
	nextID int

	GetByIDCalls int
	SearchCalls  int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:  make(map[int]*domain.Item),
		nextID: 1,
	}
}

// Seed inserts an item with an explicit ID, bumping the ID counter
func (f *FakeRepository) Seed(item domain.Item) {
	f.items[item.ID] = &item
	if item.ID >= f.nextID {
		f.nextID = item.ID + 1
	}
}

func (f *FakeRepository) matching(match func(*domain.Item) bool) []domain.Item {
	var out []domain.Item
	for _, item := range f.items {
		if match(item) {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func page(items []domain.Item, limit, offset int) []domain.Item {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

func (f *FakeRepository) List(ctx context.Context, filter domain.ItemFilter, limit, offset int) ([]domain.Item, int, error) {
	all := f.matching(func(item *domain.Item) bool {
		if filter.CategoryID != nil && (item.CategoryID == nil || *item.CategoryID != *filter.CategoryID) {
			return false
		}
		if filter.RarityID != nil && (item.RarityID == nil || *item.RarityID != *filter.RarityID) {
			return false
		}
		if filter.MinLevel != nil && item.LevelReq < *filter.MinLevel {
			return false
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Name)) {
			return false
		}
		return true
	})
	return page(all, limit, offset), len(all), nil
}

func (f *FakeRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Item, int, error) {
	f.SearchCalls++
	q := strings.ToLower(query)
	all := f.matching(func(item *domain.Item) bool {
		return strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q)
	})
	return page(all, limit, offset), len(all), nil
}

func (f *FakeRepository) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	f.GetByIDCalls++
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cc := *item
	return &cc, nil
}

func (f *FakeRepository) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *FakeRepository) Insert(ctx context.Context, item *domain.Item) (int, error) {
	id := f.nextID
	f.nextID++
	stored := *item
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.items[id] = &stored
	return id, nil
}

func (f *FakeRepository) Update(ctx context.Context, id int, update domain.ItemUpdate) (*domain.Item, error) {
	current, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.ImageURL != nil {
		current.ImageURL = *update.ImageURL
	}
	if update.Price != nil {
		current.Price = *update.Price
	}
	if update.LevelReq != nil {
		current.LevelReq = *update.LevelReq
	}
	if update.Stats != nil {
		current.Stats = update.Stats
	}
	if update.IsTradable != nil {
		current.IsTradable = *update.IsTradable
	}
	if update.SetCategoryNil {
		current.CategoryID = nil
	} else if update.CategoryID != nil {
		categoryID := *update.CategoryID
		current.CategoryID = &categoryID
	}
	if update.SetRarityNil {
		current.RarityID = nil
	} else if update.RarityID != nil {
		rarityID := *update.RarityID
		current.RarityID = &rarityID
	}
	current.UpdatedAt = time.Now()
	cc := *current
	return &cc, nil
}

func (f *FakeRepository) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}
