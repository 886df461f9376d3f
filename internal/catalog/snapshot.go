package catalog

import (
	"context"

	log "github.com/sirupsen/logrus"

	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/seed"
)

// Export returns the whole catalog as a snapshot document.
func (c *Catalog) Export() domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.NewSnapshot(
		cloneCategories(c.categories),
		cloneServices(c.services),
		cloneBanners(c.banners),
		c.now(),
	)
}

// Import validates snap and replaces all three collections with it.
func (c *Catalog) Import(ctx context.Context, snap domain.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	categories := cloneCategories(snap.Categories)
	services := linkServices(categories, cloneServices(snap.Services))
	banners := cloneBanners(snap.Banners)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.replace(categories, services, banners)
	log.Infof("📥 Imported snapshot %s: %d categories, %d services, %d banners",
		snap.Version, len(categories), len(services), len(banners))

	return c.persist(ctx,
		domain.Banners(banners),
		domain.Categories(categories),
		domain.Services(services),
	)
}

// Reset restores the seed dataset and persists it.
func (c *Catalog) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.replace(seed.Categories(), seed.Services(), seed.Banners())
	log.Info("🔄 Catalog reset to sample data")

	return c.persist(ctx,
		domain.Banners(c.banners),
		domain.Categories(c.categories),
		domain.Services(c.services),
	)
}

func (c *Catalog) replace(categories []domain.Category, services []domain.Service, banners []domain.Banner) {
	c.categories = categories
	c.services = services
	c.banners = banners
}
