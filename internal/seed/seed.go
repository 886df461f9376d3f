// Package seed holds the built-in catalog used until persisted data exists.
package seed

import "mydahanu/directory/internal/domain"

// Categories returns a fresh copy of the seed categories.
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	for i := range categories {
		out[i] = categories[i].Clone()
	}
	return out
}

// Services returns a fresh copy of the seed services with their category
// ids resolved.
func Services() []domain.Service {
	owner := make(map[string]string)
	for _, c := range categories {
		for _, sub := range c.Subcategories {
			owner[sub.ID] = c.ID
		}
	}

	out := make([]domain.Service, len(services))
	for i := range services {
		out[i] = services[i].Clone()
		out[i].CategoryID = owner[out[i].SubcategoryID]
	}
	return out
}

// Banners returns a fresh copy of the seed banners.
func Banners() []domain.Banner {
	out := make([]domain.Banner, len(banners))
	copy(out, banners)
	return out
}

func Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Categories: Categories(),
		Services:   Services(),
		Banners:    Banners(),
		Version:    domain.SnapshotVersion,
	}
}
