package catalog

import (
	"context"

	"mydahanu/directory/internal/domain"
)

// AddService appends a service. Its subcategory must exist; the category
// name and id are taken from the subcategory's owner.
func (c *Catalog) AddService(ctx context.Context, in domain.ServiceInput) (domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, _, ok := c.owner(in.SubcategoryID)
	if !ok {
		return domain.Service{}, domain.ErrSubcategoryNotFound
	}

	s := domain.Service{
		ID:            domain.NewID(domain.ServiceIDPrefix),
		Name:          in.Name,
		Category:      cat.Name,
		CategoryID:    cat.ID,
		SubcategoryID: in.SubcategoryID,
		Description:   in.Description,
		Image:         in.Image,
		Rating:        in.Rating,
		Reviews:       in.Reviews,
		Price:         in.Price,
		Location:      in.Location,
		Timing:        in.Timing,
		Phone:         in.Phone,
		Features:      append([]string(nil), in.Features...),
	}

	updated := append(cloneServices(c.services), s)
	c.services = updated

	return s.Clone(), c.persist(ctx, domain.Services(updated))
}

// UpdateService merges patch into the service with id and re-derives its
// category from the (possibly new) subcategory.
func (c *Catalog) UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findService(id)
	if idx < 0 {
		return domain.Service{}, domain.ErrServiceNotFound
	}

	s := patch.Apply(c.services[idx])
	if cat, _, ok := c.owner(s.SubcategoryID); ok {
		s.Category = cat.Name
		s.CategoryID = cat.ID
	} else if patch.SubcategoryID != nil {
		return domain.Service{}, domain.ErrSubcategoryNotFound
	}

	services := cloneServices(c.services)
	services[idx] = s
	c.services = services

	return s.Clone(), c.persist(ctx, domain.Services(services))
}

func (c *Catalog) RemoveService(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findService(id)
	if idx < 0 {
		return domain.ErrServiceNotFound
	}

	services := make([]domain.Service, 0, len(c.services)-1)
	services = append(services, c.services[:idx]...)
	services = append(services, c.services[idx+1:]...)
	c.services = services

	return c.persist(ctx, domain.Services(services))
}
