package utils

import "github.com/osse101/GameCatalog_Go/internal/domain"

// Pagination defaults and bounds for page/size query parameters.
const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// GetPagination normalizes raw page/size parameters into limit, offset and
// the 1-indexed current page. Zero values mean "not provided". Size is
// clamped to [1, MaxSize].
func GetPagination(page, size int) (limit, offset, currentPage int) {
	currentPage = page
	if currentPage < 1 {
		currentPage = DefaultPage
	}

	limit = size
	if limit < 1 {
		limit = DefaultSize
	}
	if limit > MaxSize {
		limit = MaxSize
	}

	offset = (currentPage - 1) * limit
	return limit, offset, currentPage
}

// NewPageMeta assembles envelope metadata with totalPages = ceil(total/limit).
func NewPageMeta(totalItems, limit, currentPage int) domain.PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return domain.PageMeta{
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		TotalPages:   totalPages,
		CurrentPage:  currentPage,
	}
}
