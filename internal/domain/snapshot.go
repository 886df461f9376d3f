package domain

import (
	"fmt"
	"time"
)

// SnapshotVersion is written into every exported snapshot.
const SnapshotVersion = "1.0.0"

// Snapshot is the import/export document holding the whole catalog.
type Snapshot struct {
	Categories  []Category `json:"categories"`
	Services    []Service  `json:"services"`
	Banners     []Banner   `json:"banners"`
	Version     string     `json:"version"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

func NewSnapshot(categories []Category, services []Service, banners []Banner, now time.Time) Snapshot {
	return Snapshot{
		Categories:  categories,
		Services:    services,
		Banners:     banners,
		Version:     SnapshotVersion,
		LastUpdated: now.UTC(),
	}
}

// Validate checks that the snapshot is structurally usable: all collections
// present, a version set, unique ids and every service pointing at a known
// subcategory. Errors wrap ErrInvalidSnapshot.
func (s Snapshot) Validate() error {
	switch {
	case s.Categories == nil:
		return fmt.Errorf("%w: categories missing", ErrInvalidSnapshot)
	case s.Services == nil:
		return fmt.Errorf("%w: services missing", ErrInvalidSnapshot)
	case s.Banners == nil:
		return fmt.Errorf("%w: banners missing", ErrInvalidSnapshot)
	case s.Version == "":
		return fmt.Errorf("%w: version missing", ErrInvalidSnapshot)
	}

	categoryIDs := make(map[string]struct{}, len(s.Categories))
	subcategoryIDs := make(map[string]struct{})
	for _, c := range s.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category %q has no id", ErrInvalidSnapshot, c.Name)
		}
		if _, dup := categoryIDs[c.ID]; dup {
			return fmt.Errorf("%w: duplicate category id %s", ErrInvalidSnapshot, c.ID)
		}
		categoryIDs[c.ID] = struct{}{}

		for _, sub := range c.Subcategories {
			if sub.ID == "" {
				return fmt.Errorf("%w: subcategory %q has no id", ErrInvalidSnapshot, sub.Name)
			}
			if _, dup := subcategoryIDs[sub.ID]; dup {
				return fmt.Errorf("%w: duplicate subcategory id %s", ErrInvalidSnapshot, sub.ID)
			}
			subcategoryIDs[sub.ID] = struct{}{}
		}
	}

	serviceIDs := make(map[string]struct{}, len(s.Services))
	for _, srv := range s.Services {
		if srv.ID == "" {
			return fmt.Errorf("%w: service %q has no id", ErrInvalidSnapshot, srv.Name)
		}
		if _, dup := serviceIDs[srv.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %s", ErrInvalidSnapshot, srv.ID)
		}
		serviceIDs[srv.ID] = struct{}{}

		if _, ok := subcategoryIDs[srv.SubcategoryID]; !ok {
			return fmt.Errorf("%w: service %s references unknown subcategory %s",
				ErrInvalidSnapshot, srv.ID, srv.SubcategoryID)
		}
	}

	bannerIDs := make(map[string]struct{}, len(s.Banners))
	for _, b := range s.Banners {
		if b.ID == "" {
			return fmt.Errorf("%w: banner %q has no id", ErrInvalidSnapshot, b.Title)
		}
		if _, dup := bannerIDs[b.ID]; dup {
			return fmt.Errorf("%w: duplicate banner id %s", ErrInvalidSnapshot, b.ID)
		}
		bannerIDs[b.ID] = struct{}{}
	}

	return nil
}
