package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const entryColumns = `id, userid, itemid, quantity, created_at`

func scanEntry(row pgx.Row) (*domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.ItemID, &e.Quantity, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetForUser returns a page of the user's entries with item detail expanded,
// plus the user's total distinct-entry count.
func (r *InventoryRepository) GetForUser(ctx context.Context, userID, limit, offset int) ([]domain.InventoryEntry, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory WHERE userid = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory entries: %w", err)
	}

	query := `
		SELECT e.id, e.userid, e.itemid, e.quantity, e.created_at,
		       i.id, i.name, COALESCE(i.description, ''), COALESCE(i.image_url, ''),
		       i.price, i.levelreq, i.stats, i.is_tradable, i.category_id, i.rarity_id,
		       i.created_at, i.updated_at,
		       c.id, c.name, COALESCE(c.description, ''), c.parent_id,
		       r.id, r.name, r.color_code, r.drop_chance
		FROM inventory e
		JOIN items i ON i.id = e.itemid
		LEFT JOIN categories c ON c.id = i.category_id
		LEFT JOIN rarities r ON r.id = i.rarity_id
		WHERE e.userid = $1
		ORDER BY e.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var (
			e         domain.InventoryEntry
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
		err := rows.Scan(
			&e.ID, &e.UserID, &e.ItemID, &e.Quantity, &e.CreatedAt,
			&item.ID, &item.Name, &item.Description, &item.ImageURL,
			&item.Price, &item.LevelReq, &item.Stats, &item.IsTradable,
			&item.CategoryID, &item.RarityID, &item.CreatedAt, &item.UpdatedAt,
			&catID, &catName, &catDesc, &catParent,
			&rarID, &rarName, &rarColor, &rarChance,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
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
		e.Item = &item
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// GetEntry returns the entry for a (user, item) pair
func (r *InventoryRepository) GetEntry(ctx context.Context, userID, itemID int) (*domain.InventoryEntry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM inventory WHERE userid = $1 AND itemid = $2`, userID, itemID)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return entry, nil
}

// AddQuantity merges quantity into the entry by atomic addition, creating it
// when absent. The single-statement upsert means two concurrent adds on the
// same pair both land; there is no read-modify-write window.
func (r *InventoryRepository) AddQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	query := `
		INSERT INTO inventory (userid, itemid, quantity, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (userid, itemid)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
		RETURNING ` + entryColumns
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID, itemID, quantity))
	if err != nil {
		return nil, fmt.Errorf("failed to add inventory quantity: %w", err)
	}
	return entry, nil
}

// SetQuantity replaces the stored quantity of an existing entry. There is no
// implicit creation: an absent pair yields ErrEntryNotFound.
func (r *InventoryRepository) SetQuantity(ctx context.Context, userID, itemID, quantity int) (*domain.InventoryEntry, error) {
	query := `
		UPDATE inventory
		SET quantity = $3
		WHERE userid = $1 AND itemid = $2
		RETURNING ` + entryColumns
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID, itemID, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to set inventory quantity: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes the entry if present and reports whether it existed
func (r *InventoryRepository) DeleteEntry(ctx context.Context, userID, itemID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE userid = $1 AND itemid = $2`, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
