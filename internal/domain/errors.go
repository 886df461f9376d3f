package domain

import "errors"

// Lookup misses reported by catalog mutators. The catalog is left unchanged
// whenever one of these is returned.
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrBannerNotFound      = errors.New("banner not found")

	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
