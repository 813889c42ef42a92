package domain

// Category is a node in the item classification tree. The hierarchy is an
// arena of flat records keyed by ID with a nullable parent reference;
// Subcategories is populated on demand by the category service, never stored.
type Category struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
	ParentID    *int   `json:"parentid,omitempty" db:"parent_id"`

	Subcategories []Category `json:"subcategories,omitempty"`
}

// CategoryUpdate carries the mutable fields of a category. Nil pointers mean
// "leave unchanged"; SetParentNil distinguishes "clear the parent" from
// "don't touch the parent".
type CategoryUpdate struct {
	Name         *string
	Description  *string
	ParentID     *int
	SetParentNil bool
}
