package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// ItemRepository implements the item repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// itemSelect joins the optional category and rarity references so a single
// query yields the expanded item.
const itemSelect = `
	SELECT i.id, i.name, COALESCE(i.description, ''), COALESCE(i.image_url, ''),
	       i.price, i.levelreq, i.stats, i.is_tradable, i.category_id, i.rarity_id,
	       i.created_at, i.updated_at,
	       c.id, c.name, COALESCE(c.description, ''), c.parent_id,
	       r.id, r.name, r.color_code, r.drop_chance
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id
	LEFT JOIN rarities r ON r.id = i.rarity_id
`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item      domain.Item
		catID     *int
		catName   *string
		catDesc   *string
		catParent *int
		rarID     *int
		rarName   *string
		rarColor  *string
		rarChance *float64
	)

	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.ImageURL,
		&item.Price, &item.LevelReq, &item.Stats, &item.IsTradable,
		&item.CategoryID, &item.RarityID, &item.CreatedAt, &item.UpdatedAt,
		&catID, &catName, &catDesc, &catParent,
		&rarID, &rarName, &rarColor, &rarChance,
	)
	if err != nil {
		return nil, err
	}

	// A dangling category_id (category deleted) joins to nothing; the item
	// keeps the stale reference with no expanded struct.
	if catID != nil {
		item.Category = &domain.Category{ID: *catID, Name: *catName, Description: *catDesc, ParentID: catParent}
	}
	if rarID != nil {
		rarity := &domain.Rarity{ID: *rarID, Name: *rarName, ColorCode: *rarColor}
		if rarChance != nil {
			rarity.DropChance = *rarChance
		}
		item.Rarity = rarity
	}
	return &item, nil
}

func (r *ItemRepository) collectItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// buildFilterClause translates the conjunctive filter into a WHERE clause.
// Absent fields impose no constraint.
func buildFilterClause(filter domain.ItemFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("i.category_id = $%d", len(args)))
	}
	if filter.RarityID != nil {
		args = append(args, *filter.RarityID)
		conditions = append(conditions, fmt.Sprintf("i.rarity_id = $%d", len(args)))
	}
	if filter.MinLevel != nil {
		args = append(args, *filter.MinLevel)
		conditions = append(conditions, fmt.Sprintf("i.levelreq >= $%d", len(args)))
	}
	if filter.Name != "" {
		args = append(args, filter.Name)
		conditions = append(conditions, fmt.Sprintf("i.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns the filtered page plus the total count of the full filtered set
func (r *ItemRepository) List(ctx context.Context, filter domain.ItemFilter, limit, offset int) ([]domain.Item, int, error) {
	where, args := buildFilterClause(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM items i` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	pageArgs := append(args, limit, offset)
	pageQuery := fmt.Sprintf("%s%s ORDER BY i.id LIMIT $%d OFFSET $%d", itemSelect, where, len(args)+1, len(args)+2)
	items, err := r.collectItems(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Search matches items whose name or description contains the query,
// case-insensitively. The count covers the full match set, not just the
// returned page.
func (r *ItemRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Item, int, error) {
	const match = `i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%'`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM items i WHERE `+match, query).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	items, err := r.collectItems(ctx, itemSelect+` WHERE `+match+` ORDER BY i.id LIMIT $2 OFFSET $3`, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns an item with category and rarity expanded
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, itemSelect+` WHERE i.id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// Exists reports whether an item with the given ID exists
func (r *ItemRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}
	return exists, nil
}

// Insert creates an item and returns its generated ID
func (r *ItemRepository) Insert(ctx context.Context, item *domain.Item) (int, error) {
	stats := item.Stats
	if stats == nil {
		stats = domain.Stats{}
	}

	query := `
		INSERT INTO items (name, description, image_url, price, levelreq, stats, is_tradable, category_id, rarity_id, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.ImageURL, item.Price, item.LevelReq,
		stats, item.IsTradable, item.CategoryID, item.RarityID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return id, nil
}

// Update applies the changed fields and returns the updated, expanded item
func (r *ItemRepository) Update(ctx context.Context, id int, update domain.ItemUpdate) (*domain.Item, error) {
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
		current.CategoryID = update.CategoryID
	}
	if update.SetRarityNil {
		current.RarityID = nil
	} else if update.RarityID != nil {
		current.RarityID = update.RarityID
	}

	stats := current.Stats
	if stats == nil {
		stats = domain.Stats{}
	}

	query := `
		UPDATE items
		SET name = $1, description = NULLIF($2, ''), image_url = NULLIF($3, ''),
		    price = $4, levelreq = $5, stats = $6, is_tradable = $7,
		    category_id = $8, rarity_id = $9, updated_at = NOW()
		WHERE id = $10
	`
	_, err = r.db.Exec(ctx, query,
		current.Name, current.Description, current.ImageURL, current.Price, current.LevelReq,
		stats, current.IsTradable, current.CategoryID, current.RarityID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the item row
func (r *ItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
