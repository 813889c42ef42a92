package domain

// PageMeta is the uniform pagination envelope metadata. CurrentPage is
// always the normalized 1-indexed page, never the raw query parameter.
type PageMeta struct {
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
}

// Page is the paginated response envelope returned by every list operation.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}
