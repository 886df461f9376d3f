package catalog

import (
	"context"

	"mydahanu/directory/internal/domain"
)

func newSubcategory(in domain.SubcategoryInput) domain.Subcategory {
	return domain.Subcategory{
		ID:            domain.NewID(domain.SubcategoryIDPrefix),
		Name:          in.Name,
		Details:       in.Details,
		Image:         in.Image,
		ProviderCount: in.ProviderCount,
	}
}

// AddSubcategory appends a subcategory to the category with categoryID.
func (c *Catalog) AddSubcategory(ctx context.Context, categoryID string, in domain.SubcategoryInput) (domain.Subcategory, error) {
	sub := newSubcategory(in)

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findCategory(categoryID)
	if idx < 0 {
		return domain.Subcategory{}, domain.ErrCategoryNotFound
	}

	categories := cloneCategories(c.categories)
	categories[idx].Subcategories = append(categories[idx].Subcategories, sub)
	c.categories = categories

	return sub, c.persist(ctx, domain.Categories(categories))
}

func (c *Catalog) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID string, patch domain.SubcategoryPatch) (domain.Subcategory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findCategory(categoryID)
	if idx < 0 {
		return domain.Subcategory{}, domain.ErrCategoryNotFound
	}
	subIdx := c.categories[idx].FindSubcategory(subcategoryID)
	if subIdx < 0 {
		return domain.Subcategory{}, domain.ErrSubcategoryNotFound
	}

	categories := cloneCategories(c.categories)
	sub := patch.Apply(categories[idx].Subcategories[subIdx])
	categories[idx].Subcategories[subIdx] = sub
	c.categories = categories

	return sub, c.persist(ctx, domain.Categories(categories))
}

// RemoveSubcategory deletes the subcategory and exactly the services that
// reference it. Nothing changes unless the subcategory belongs to the
// given category.
func (c *Catalog) RemoveSubcategory(ctx context.Context, categoryID, subcategoryID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findCategory(categoryID)
	if idx < 0 {
		return domain.ErrCategoryNotFound
	}
	subIdx := c.categories[idx].FindSubcategory(subcategoryID)
	if subIdx < 0 {
		return domain.ErrSubcategoryNotFound
	}

	categories := cloneCategories(c.categories)
	subs := categories[idx].Subcategories
	categories[idx].Subcategories = append(subs[:subIdx:subIdx], subs[subIdx+1:]...)
	c.categories = categories

	recs := []domain.Record{domain.Categories(categories)}

	services := make([]domain.Service, 0, len(c.services))
	for _, s := range c.services {
		if s.SubcategoryID != subcategoryID {
			services = append(services, s)
		}
	}
	if len(services) != len(c.services) {
		c.services = services
		recs = append(recs, domain.Services(services))
	}

	return c.persist(ctx, recs...)
}
