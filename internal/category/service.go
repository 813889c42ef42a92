package category

import (
	"context"
	"errors"

	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/repository"
)

// subtreeDepth is how many levels of subcategories get eagerly expanded
// beneath a requested node. Matches the fixed two-level expansion of the
// category endpoints; deeper descendants require another request.
const subtreeDepth = 2

// Service defines the interface for category tree operations
type Service interface {
	// ListAll returns root categories with two levels of eager subcategory
	// expansion when rootOnly is true, or a flat unexpanded list otherwise.
	ListAll(ctx context.Context, rootOnly bool) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, name, description string, parentID *int) (*domain.Category, error)
	Update(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}

// service implements the Service interface
type service struct {
	repo repository.Category
}

// NewService creates a category service
func NewService(repo repository.Category) Service {
	return &service{repo: repo}
}

func (s *service) ListAll(ctx context.Context, rootOnly bool) ([]domain.Category, error) {
	if !rootOnly {
		return s.repo.GetAll(ctx)
	}

	roots, err := s.repo.GetRoots(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roots {
		if err := s.expandChildren(ctx, &roots[i], subtreeDepth); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.expandChildren(ctx, category, subtreeDepth); err != nil {
		return nil, err
	}
	return category, nil
}

// expandChildren fills Subcategories down to the given depth via parent-id
// index lookups, so the tree never materializes as a cyclic object graph.
func (s *service) expandChildren(ctx context.Context, category *domain.Category, depth int) error {
	if depth == 0 {
		return nil
	}
	children, err := s.repo.GetChildren(ctx, category.ID)
	if err != nil {
		return err
	}
	for i := range children {
		if err := s.expandChildren(ctx, &children[i], depth-1); err != nil {
			return err
		}
	}
	category.Subcategories = children
	return nil
}

func (s *service) Create(ctx context.Context, name, description string, parentID *int) (*domain.Category, error) {
	log := logger.FromContext(ctx)

	category := &domain.Category{Name: name, Description: description, ParentID: parentID}
	id, err := s.repo.Insert(ctx, category)
	if err != nil {
		log.Warn("Failed to create category", "name", name, "error", err)
		return nil, err
	}
	category.ID = id

	log.Info("Category created", "id", id, "name", name)
	return category, nil
}

func (s *service) Update(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error) {
	if update.ParentID != nil {
		if err := s.checkCycle(ctx, id, *update.ParentID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, update)
}

// checkCycle rejects a parent assignment that would make the category its
// own ancestor. The walk follows the ancestor chain from the proposed
// parent; a dangling parent reference ends the chain.
func (s *service) checkCycle(ctx context.Context, id, parentID int) error {
	current := parentID
	for {
		if current == id {
			return domain.ErrCategoryCycle
		}
		ancestor, err := s.repo.GetByID(ctx, current)
		if err != nil {
			if errors.Is(err, domain.ErrCategoryNotFound) {
				// Dangling parent: the chain ends here, no cycle possible
				return nil
			}
			return err
		}
		if ancestor.ParentID == nil {
			return nil
		}
		current = *ancestor.ParentID
	}
}

func (s *service) Delete(ctx context.Context, id int) error {
	log := logger.FromContext(ctx)

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrCategoryNotFound
	}

	// Children keep their parent reference and items keep their category
	// reference; the tree is repaired by later updates, not by deletion.
	log.Info("Category deleted", "id", id)
	return nil
}
