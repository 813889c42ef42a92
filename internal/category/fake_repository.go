package category

import (
	"context"
	"sort"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Category for integration-style unit tests.
type FakeRepository struct {
	categories map[int]*domain.Category
	nextID     int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		categories: make(map[int]*domain.Category),
		nextID:     1,
	}
}

// Seed inserts a category with an explicit ID, bumping the ID counter
func (f *FakeRepository) Seed(c domain.Category) {
	f.categories[c.ID] = &c
	if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
}

func (f *FakeRepository) sorted(filter func(*domain.Category) bool) []domain.Category {
	var out []domain.Category
	for _, c := range f.categories {
		if filter(c) {
			cc := *c
			cc.Subcategories = nil
			out = append(out, cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *FakeRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	return f.sorted(func(*domain.Category) bool { return true }), nil
}

func (f *FakeRepository) GetRoots(ctx context.Context) ([]domain.Category, error) {
	return f.sorted(func(c *domain.Category) bool { return c.ParentID == nil }), nil
}

func (f *FakeRepository) GetChildren(ctx context.Context, parentID int) ([]domain.Category, error) {
	return f.sorted(func(c *domain.Category) bool { return c.ParentID != nil && *c.ParentID == parentID }), nil
}

func (f *FakeRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cc := *c
	cc.Subcategories = nil
	return &cc, nil
}

func (f *FakeRepository) Insert(ctx context.Context, category *domain.Category) (int, error) {
	for _, c := range f.categories {
		if c.Name == category.Name {
			return 0, domain.ErrCategoryNameTaken
		}
	}
	id := f.nextID
	f.nextID++
	stored := *category
	stored.ID = id
	f.categories[id] = &stored
	return id, nil
}

func (f *FakeRepository) Update(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error) {
	current, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	if update.Name != nil {
		for otherID, c := range f.categories {
			if otherID != id && c.Name == *update.Name {
				return nil, domain.ErrCategoryNameTaken
			}
		}
		current.Name = *update.Name
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.SetParentNil {
		current.ParentID = nil
	} else if update.ParentID != nil {
		parentID := *update.ParentID
		current.ParentID = &parentID
	}
	cc := *current
	return &cc, nil
}

func (f *FakeRepository) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}
