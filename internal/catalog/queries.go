package catalog

import (
	"strings"

	"mydahanu/directory/internal/domain"
)

// FeaturedCount is the number of services shown as featured.
const FeaturedCount = 5

func (c *Catalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneCategories(c.categories)
}

func (c *Catalog) Services() []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneServices(c.services)
}

func (c *Catalog) Banners() []domain.Banner {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneBanners(c.banners)
}

// FeaturedServices returns the first FeaturedCount services in store order.
func (c *Catalog) FeaturedServices() []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := min(len(c.services), FeaturedCount)
	return cloneServices(c.services[:n])
}

func (c *Catalog) Category(id string) (domain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.findCategory(id); idx >= 0 {
		return c.categories[idx].Clone(), true
	}
	return domain.Category{}, false
}

// Subcategory scans every category for the subcategory with id.
func (c *Catalog) Subcategory(id string) (domain.Subcategory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, sub, ok := c.owner(id)
	return sub, ok
}

func (c *Catalog) Service(id string) (domain.Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.findService(id); idx >= 0 {
		return c.services[idx].Clone(), true
	}
	return domain.Service{}, false
}

func (c *Catalog) ServicesBySubcategory(subcategoryID string) []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Service, 0)
	for _, s := range c.services {
		if s.SubcategoryID == subcategoryID {
			out = append(out, s.Clone())
		}
	}
	return out
}

// SearchServices returns services whose name or description contains query
// (case-insensitive) and, when categoryID is set, that belong to that
// category. An unknown categoryID matches nothing.
func (c *Catalog) SearchServices(query, categoryID string) []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(query)

	var category *domain.Category
	if categoryID != "" {
		idx := c.findCategory(categoryID)
		if idx < 0 {
			return []domain.Service{}
		}
		category = &c.categories[idx]
	}

	out := make([]domain.Service, 0)
	for _, s := range c.services {
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			continue
		}
		if category != nil && !inCategory(s, *category) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

func inCategory(s domain.Service, cat domain.Category) bool {
	if s.CategoryID != "" {
		return s.CategoryID == cat.ID
	}
	return s.Category == cat.Name
}

// Stats counts the catalog's collections.
type Stats struct {
	Categories    int `json:"categories"`
	Subcategories int `json:"subcategories"`
	Services      int `json:"services"`
	Banners       int `json:"banners"`
}

func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := Stats{
		Categories: len(c.categories),
		Services:   len(c.services),
		Banners:    len(c.banners),
	}
	for _, cat := range c.categories {
		st.Subcategories += len(cat.Subcategories)
	}
	return st
}
