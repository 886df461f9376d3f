package catalog

import (
	"context"

	log "github.com/sirupsen/logrus"

	"mydahanu/directory/internal/domain"
)

// AddCategory appends a category. Supplied subcategories get fresh ids.
func (c *Catalog) AddCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	cat := domain.Category{
		ID:            domain.NewID(domain.CategoryIDPrefix),
		Name:          in.Name,
		Icon:          in.Icon,
		Gradient:      append([]string(nil), in.Gradient...),
		Subcategories: make([]domain.Subcategory, 0, len(in.Subcategories)),
	}
	if len(cat.Gradient) == 0 {
		cat.Gradient = append([]string(nil), domain.DefaultGradient...)
	}
	for _, sub := range in.Subcategories {
		cat.Subcategories = append(cat.Subcategories, newSubcategory(sub))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated := append(cloneCategories(c.categories), cat)
	c.categories = updated

	return cat.Clone(), c.persist(ctx, domain.Categories(updated))
}

// UpdateCategory merges patch into the category with id. A rename is
// carried over to the denormalized category name of its services.
func (c *Catalog) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findCategory(id)
	if idx < 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}

	categories := cloneCategories(c.categories)
	before := categories[idx]
	after := patch.Apply(before)
	categories[idx] = after
	c.categories = categories

	recs := []domain.Record{domain.Categories(categories)}

	if after.Name != before.Name {
		services := cloneServices(c.services)
		renamed := 0
		for i := range services {
			if services[i].CategoryID == id {
				services[i].Category = after.Name
				renamed++
			}
		}
		if renamed > 0 {
			c.services = services
			recs = append(recs, domain.Services(services))
			log.Debugf("Renamed category on %d services to %q", renamed, after.Name)
		}
	}

	return after.Clone(), c.persist(ctx, recs...)
}

// RemoveCategory deletes the category with id together with its
// subcategories and every service attached to either.
func (c *Catalog) RemoveCategory(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findCategory(id)
	if idx < 0 {
		return domain.ErrCategoryNotFound
	}
	removed := c.categories[idx]

	subIDs := make(map[string]struct{}, len(removed.Subcategories))
	for _, sub := range removed.Subcategories {
		subIDs[sub.ID] = struct{}{}
	}

	categories := make([]domain.Category, 0, len(c.categories)-1)
	categories = append(categories, c.categories[:idx]...)
	categories = append(categories, c.categories[idx+1:]...)
	c.categories = categories

	recs := []domain.Record{domain.Categories(categories)}

	services := make([]domain.Service, 0, len(c.services))
	for _, s := range c.services {
		_, underSub := subIDs[s.SubcategoryID]
		if s.CategoryID == id || underSub {
			continue
		}
		services = append(services, s)
	}
	if len(services) != len(c.services) {
		log.Infof("🗑️ Removing category %s cascaded to %d services", id, len(c.services)-len(services))
		c.services = services
		recs = append(recs, domain.Services(services))
	}

	return c.persist(ctx, recs...)
}
