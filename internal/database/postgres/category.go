package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// CategoryRepository implements the category repository for PostgreSQL
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, COALESCE(description, ''), parent_id`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) collectCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// GetAll returns every category as a flat list
func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	return r.collectCategories(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
}

// GetRoots returns categories without a parent
func (r *CategoryRepository) GetRoots(ctx context.Context) ([]domain.Category, error) {
	return r.collectCategories(ctx, `SELECT `+categoryColumns+` FROM categories WHERE parent_id IS NULL ORDER BY id`)
}

// GetChildren returns the direct subcategories of a category
func (r *CategoryRepository) GetChildren(ctx context.Context, parentID int) ([]domain.Category, error) {
	return r.collectCategories(ctx, `SELECT `+categoryColumns+` FROM categories WHERE parent_id = $1 ORDER BY id`, parentID)
}

// GetByID returns a single flat category record
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// Insert creates a category and returns its generated ID
func (r *CategoryRepository) Insert(ctx context.Context, category *domain.Category) (int, error) {
	query := `
		INSERT INTO categories (name, description, parent_id)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query, category.Name, category.Description, category.ParentID).Scan(&id)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return 0, domain.ErrCategoryNameTaken
		}
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}
	return id, nil
}

// Update applies the changed fields and returns the updated record
func (r *CategoryRepository) Update(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.SetParentNil {
		current.ParentID = nil
	} else if update.ParentID != nil {
		current.ParentID = update.ParentID
	}

	query := `
		UPDATE categories
		SET name = $1, description = NULLIF($2, ''), parent_id = $3
		WHERE id = $4
	`
	if _, err := r.db.Exec(ctx, query, current.Name, current.Description, current.ParentID, id); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, domain.ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return current, nil
}

// Delete removes the category row. No cascade: children and items keep
// their now-dangling references.
func (r *CategoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
