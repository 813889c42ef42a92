package domain

// ItemFilter is a conjunction of independent item predicates. Nil/empty
// fields impose no constraint.
type ItemFilter struct {
	CategoryID *int    // category-id equality
	RarityID   *int    // rarity-id equality
	MinLevel   *int    // levelreq >= MinLevel
	Name       string  // case-insensitive substring on name
}

// IsZero reports whether the filter imposes no constraints.
func (f ItemFilter) IsZero() bool {
	return f.CategoryID == nil && f.RarityID == nil && f.MinLevel == nil && f.Name == ""
}
