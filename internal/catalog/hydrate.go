package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"mydahanu/directory/internal/domain"
)

// Hydrate replaces seed collections with persisted ones. The three keys are
// read concurrently; a key that is absent, unreadable or unparseable leaves
// its seed collection in place. The returned error only reports what could
// not be loaded; the catalog is usable either way.
func (c *Catalog) Hydrate(ctx context.Context, src Source) error {
	var (
		banners    []domain.Banner
		categories []domain.Category
		services   []domain.Service
	)

	errGroup := new(errgroup.Group)

	errGroup.Go(func() error {
		v, err := load[domain.Banners](ctx, src, domain.KeyBanners)
		banners = v
		return err
	})
	errGroup.Go(func() error {
		v, err := load[domain.Categories](ctx, src, domain.KeyCategories)
		categories = v
		return err
	})
	errGroup.Go(func() error {
		v, err := load[domain.Services](ctx, src, domain.KeyServices)
		services = v
		return err
	})

	err := errGroup.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if banners != nil {
		c.banners = banners
	}
	if categories != nil {
		c.categories = categories
	}
	if services != nil {
		c.services = services
	}
	c.services = linkServices(c.categories, c.services)

	log.Infof("✅ Catalog ready: %d categories, %d services, %d banners",
		len(c.categories), len(c.services), len(c.banners))

	return err
}

// load reads and decodes one key. A nil result means "keep the seed".
func load[T ~[]E, E any](ctx context.Context, src Source, key string) (T, error) {
	raw, ok, err := src.Get(ctx, key)
	if err != nil {
		log.Warnf("⚠️ Failed to load %s, keeping seed data: %v", key, err)
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		log.Debugf("No persisted %s, using seed data", key)
		return nil, nil
	}

	v, err := domain.UnmarshalRecord[T]([]byte(raw))
	if err != nil {
		log.Warnf("⚠️ Failed to parse persisted %s, keeping seed data: %v", key, err)
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if v == nil {
		// A persisted JSON null; treat like an empty collection.
		v = T{}
	}

	log.Infof("🔄 Loaded %d %s from storage", len(v), key)
	return v, nil
}
