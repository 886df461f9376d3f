package domain

// DefaultGradient is used for categories created without colour stops.
var DefaultGradient = []string{"#3B82F6", "#60A5FA"}

// Category is a top-level directory section. It owns its subcategories.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`     // Emoji or symbol label
	Gradient      []string      `json:"gradient"` // Ordered colour stops
	Subcategories []Subcategory `json:"subcategories"`
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	out.Gradient = cloneStrings(c.Gradient)
	if c.Subcategories != nil {
		out.Subcategories = make([]Subcategory, len(c.Subcategories))
		copy(out.Subcategories, c.Subcategories)
	}
	return out
}

// FindSubcategory returns the index of the subcategory with the given id, or -1.
func (c Category) FindSubcategory(id string) int {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return i
		}
	}
	return -1
}

// CategoryInput carries the fields of a category to be created.
type CategoryInput struct {
	Name          string             `json:"name"`
	Icon          string             `json:"icon"`
	Gradient      []string           `json:"gradient,omitempty"`
	Subcategories []SubcategoryInput `json:"subcategories,omitempty"`
}

// CategoryPatch is a partial update. Nil fields are left untouched.
// Subcategories are managed through their own operations.
type CategoryPatch struct {
	Name     *string  `json:"name,omitempty"`
	Icon     *string  `json:"icon,omitempty"`
	Gradient []string `json:"gradient,omitempty"`
}

// Apply merges the patch into c and returns the result.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Gradient != nil {
		c.Gradient = cloneStrings(p.Gradient)
	}
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
