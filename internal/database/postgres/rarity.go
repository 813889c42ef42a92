package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// RarityRepository implements the rarity repository for PostgreSQL
type RarityRepository struct {
	db *pgxpool.Pool
}

// NewRarityRepository creates a new RarityRepository
func NewRarityRepository(db *pgxpool.Pool) *RarityRepository {
	return &RarityRepository{db: db}
}

// GetAll returns every rarity tier
func (r *RarityRepository) GetAll(ctx context.Context) ([]domain.Rarity, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color_code, COALESCE(drop_chance, 0) FROM rarities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rarities: %w", err)
	}
	defer rows.Close()

	var rarities []domain.Rarity
	for rows.Next() {
		var rarity domain.Rarity
		if err := rows.Scan(&rarity.ID, &rarity.Name, &rarity.ColorCode, &rarity.DropChance); err != nil {
			return nil, fmt.Errorf("failed to scan rarity: %w", err)
		}
		rarities = append(rarities, rarity)
	}
	return rarities, rows.Err()
}

// GetByID returns a single rarity
func (r *RarityRepository) GetByID(ctx context.Context, id int) (*domain.Rarity, error) {
	var rarity domain.Rarity
	err := r.db.QueryRow(ctx, `SELECT id, name, color_code, COALESCE(drop_chance, 0) FROM rarities WHERE id = $1`, id).
		Scan(&rarity.ID, &rarity.Name, &rarity.ColorCode, &rarity.DropChance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRarityNotFound
		}
		return nil, fmt.Errorf("failed to get rarity: %w", err)
	}
	return &rarity, nil
}
