// Package catalog is the in-memory, authoritative directory catalog:
// categories with their nested subcategories, services and banners.
//
// Every mutation replaces the affected collection under the catalog lock
// and hands the whole new collection to a Writer keyed by collection name.
// In the default mode the write is fire-and-forget; with WithSyncWrites the
// mutation waits for it and returns its error.
package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/seed"
)

// Writer persists whole collections.
type Writer interface {
	Enqueue(rec domain.Record)
	Save(ctx context.Context, rec domain.Record) error
}

// Source is where hydration reads persisted collections from.
type Source interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

type Catalog struct {
	mu         sync.RWMutex
	categories []domain.Category
	services   []domain.Service
	banners    []domain.Banner

	writer     Writer
	syncWrites bool
	now        func() time.Time
}

type Option func(*Catalog)

// WithSyncWrites makes every mutation wait for its write to land.
func WithSyncWrites(enabled bool) Option {
	return func(c *Catalog) {
		c.syncWrites = enabled
	}
}

// WithClock overrides the time source used for exported snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New returns a catalog holding the seed dataset.
func New(writer Writer, opts ...Option) *Catalog {
	c := &Catalog{
		categories: seed.Categories(),
		services:   seed.Services(),
		banners:    seed.Banners(),
		writer:     writer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// persist hands records to the writer. Must be called with c.mu held so
// that writes reach the writer in mutation order.
func (c *Catalog) persist(ctx context.Context, recs ...domain.Record) error {
	if !c.syncWrites {
		for _, rec := range recs {
			c.writer.Enqueue(rec)
		}
		return nil
	}

	var errs []error
	for _, rec := range recs {
		if err := c.writer.Save(ctx, rec); err != nil {
			log.Errorf("❌ Failed to persist %s: %v", rec.RecordKey(), err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// findCategory returns the index of the category with id, or -1.
func (c *Catalog) findCategory(id string) int {
	for i := range c.categories {
		if c.categories[i].ID == id {
			return i
		}
	}
	return -1
}

// findService returns the index of the service with id, or -1.
func (c *Catalog) findService(id string) int {
	for i := range c.services {
		if c.services[i].ID == id {
			return i
		}
	}
	return -1
}

// owner returns the category owning subcategory subID.
func (c *Catalog) owner(subID string) (domain.Category, domain.Subcategory, bool) {
	for _, cat := range c.categories {
		if i := cat.FindSubcategory(subID); i >= 0 {
			return cat, cat.Subcategories[i], true
		}
	}
	return domain.Category{}, domain.Subcategory{}, false
}

// linkServices makes each service's category fields agree with the owner of
// its subcategory. Services whose subcategory is unknown keep what they have;
// a missing CategoryID is then looked up by category name.
func linkServices(categories []domain.Category, services []domain.Service) []domain.Service {
	bySub := make(map[string]domain.Category)
	byName := make(map[string]string)
	for _, cat := range categories {
		if _, dup := byName[cat.Name]; !dup {
			byName[cat.Name] = cat.ID
		}
		for _, sub := range cat.Subcategories {
			bySub[sub.ID] = cat
		}
	}

	out := make([]domain.Service, len(services))
	for i, s := range services {
		out[i] = s
		if cat, ok := bySub[s.SubcategoryID]; ok {
			out[i].CategoryID = cat.ID
			out[i].Category = cat.Name
			continue
		}
		if s.CategoryID == "" {
			if id, ok := byName[s.Category]; ok {
				out[i].CategoryID = id
			}
		}
	}
	return out
}

func cloneCategories(in []domain.Category) []domain.Category {
	out := make([]domain.Category, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func cloneServices(in []domain.Service) []domain.Service {
	out := make([]domain.Service, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func cloneBanners(in []domain.Banner) []domain.Banner {
	out := make([]domain.Banner, len(in))
	copy(out, in)
	return out
}
