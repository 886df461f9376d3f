package domain

import "github.com/google/uuid"

// Id prefixes per entity kind. Banners and users carry bare ids.
const (
	CategoryIDPrefix    = "cat_"
	SubcategoryIDPrefix = "sub_"
	ServiceIDPrefix     = "srv_"
)

// NewID returns prefix followed by a time-ordered UUID (version 7).
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the random source is broken.
		id = uuid.New()
	}
	return prefix + id.String()
}
