package domain

// Rarity is a static reference tier with a display color and a drop
// probability in percent (two-decimal precision, 0-100). Drop chances are
// not enforced to sum to 100 across tiers.
type Rarity struct {
	ID         int     `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	ColorCode  string  `json:"colorCode" db:"color_code"`
	DropChance float64 `json:"dropChance" db:"drop_chance"`
}
