package domain

import "time"

// Item is a catalog entry for a game object. Category and Rarity references
// are optional: an item with a nil CategoryID is "uncategorized", a nil
// RarityID is "unrated". The expanded Category/Rarity structs are populated
// by repositories that join the reference tables.
type Item struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	Price       int       `json:"price" db:"price"`
	LevelReq    int       `json:"levelreq" db:"levelreq"`
	Stats       Stats     `json:"stats" db:"stats"`
	IsTradable  bool      `json:"isTradable" db:"is_tradable"`
	CategoryID  *int      `json:"categoryid,omitempty" db:"category_id"`
	RarityID    *int      `json:"rarityid,omitempty" db:"rarity_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Category *Category `json:"category,omitempty"`
	Rarity   *Rarity   `json:"rarity,omitempty"`
}

// ItemUpdate carries the mutable fields of an item. Nil means unchanged.
// SetCategoryNil/SetRarityNil clear the respective reference.
type ItemUpdate struct {
	Name           *string
	Description    *string
	ImageURL       *string
	Price          *int
	LevelReq       *int
	Stats          Stats
	IsTradable     *bool
	CategoryID     *int
	SetCategoryNil bool
	RarityID       *int
	SetRarityNil   bool
}
