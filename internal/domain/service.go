package domain

// Service is a single provider listing.
//
// Category is a denormalized copy of the owning category's name, kept for
// display and for compatibility with previously persisted data. CategoryID
// is the reference used for cascades and filtering.
type Service struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	CategoryID    string   `json:"categoryId,omitempty"`
	SubcategoryID string   `json:"subcategoryId"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Price         string   `json:"price"` // Free-form, e.g. "500/plate"
	Location      string   `json:"location"`
	Timing        string   `json:"timing"`
	Phone         string   `json:"phone,omitempty"`
	Features      []string `json:"features,omitempty"`
}

// Clone returns a deep copy of the service.
func (s Service) Clone() Service {
	s.Features = cloneStrings(s.Features)
	return s
}

// ServiceInput carries the fields of a service to be created. The category
// name and id are derived from SubcategoryID by the catalog.
type ServiceInput struct {
	Name          string   `json:"name"`
	SubcategoryID string   `json:"subcategoryId"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Price         string   `json:"price"`
	Location      string   `json:"location"`
	Timing        string   `json:"timing"`
	Phone         string   `json:"phone,omitempty"`
	Features      []string `json:"features,omitempty"`
}

// ServicePatch is a partial update. Nil fields are left untouched.
type ServicePatch struct {
	Name          *string   `json:"name,omitempty"`
	SubcategoryID *string   `json:"subcategoryId,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Reviews       *int      `json:"reviews,omitempty"`
	Price         *string   `json:"price,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Timing        *string   `json:"timing,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Features      *[]string `json:"features,omitempty"`
}

// Apply merges the patch into s and returns the result. The derived
// category fields are not touched here.
func (p ServicePatch) Apply(s Service) Service {
	s = s.Clone()
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.SubcategoryID != nil {
		s.SubcategoryID = *p.SubcategoryID
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
	if p.Reviews != nil {
		s.Reviews = *p.Reviews
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Timing != nil {
		s.Timing = *p.Timing
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Features != nil {
		s.Features = cloneStrings(*p.Features)
	}
	return s
}
