package catalog

import (
	"context"

	"mydahanu/directory/internal/domain"
)

func (c *Catalog) AddBanner(ctx context.Context, in domain.BannerInput) (domain.Banner, error) {
	b := domain.Banner{
		ID:          domain.NewID(""),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated := append(cloneBanners(c.banners), b)
	c.banners = updated

	return b, c.persist(ctx, domain.Banners(updated))
}

// RemoveBanner deletes the banner with id. ErrBannerNotFound means nothing
// changed.
func (c *Catalog) RemoveBanner(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]domain.Banner, 0, len(c.banners))
	for _, b := range c.banners {
		if b.ID != id {
			updated = append(updated, b)
		}
	}
	if len(updated) == len(c.banners) {
		return domain.ErrBannerNotFound
	}
	c.banners = updated

	return c.persist(ctx, domain.Banners(updated))
}
