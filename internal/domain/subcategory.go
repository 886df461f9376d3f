package domain

// Subcategory is a listing group nested inside a Category.
// Its id is unique across the whole catalog, not only within its category.
type Subcategory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Details       string `json:"details"`
	Image         string `json:"image"`
	ProviderCount int    `json:"providerCount"` // Informational only
}

// SubcategoryInput carries the fields of a subcategory to be created.
type SubcategoryInput struct {
	Name          string `json:"name"`
	Details       string `json:"details"`
	Image         string `json:"image"`
	ProviderCount int    `json:"providerCount"`
}

// SubcategoryPatch is a partial update. Nil fields are left untouched.
type SubcategoryPatch struct {
	Name          *string `json:"name,omitempty"`
	Details       *string `json:"details,omitempty"`
	Image         *string `json:"image,omitempty"`
	ProviderCount *int    `json:"providerCount,omitempty"`
}

// Apply merges the patch into s and returns the result.
func (p SubcategoryPatch) Apply(s Subcategory) Subcategory {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Details != nil {
		s.Details = *p.Details
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.ProviderCount != nil {
		s.ProviderCount = *p.ProviderCount
	}
	return s
}
