package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Shape(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, "cat_events", cats[0].ID)
	assert.Equal(t, "cat_accommodation", cats[len(cats)-1].ID)

	subs := 0
	for _, c := range cats {
		subs += len(c.Subcategories)
	}
	assert.Equal(t, 26, subs)
	assert.Len(t, cats[1].Subcategories, 7)
	assert.Equal(t, "Medical & Health", cats[1].Name)
}

func TestSnapshot_IsValid(t *testing.T) {
	s := Snapshot()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Services, 12)
	assert.Len(t, s.Banners, 4)
}

func TestServices_CategoryResolved(t *testing.T) {
	byID := make(map[string]string)
	for _, c := range Categories() {
		byID[c.ID] = c.Name
	}

	for _, s := range Services() {
		require.NotEmpty(t, s.CategoryID, s.ID)
		assert.Equal(t, byID[s.CategoryID], s.Category, s.ID)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	a := Categories()
	a[0].Name = "changed"
	a[0].Subcategories[0].Name = "changed"

	b := Categories()
	assert.Equal(t, "Events", b[0].Name)
	assert.Equal(t, "Event Planning & Services", b[0].Subcategories[0].Name)

	s := Services()
	s[0].Features[0] = "changed"
	assert.Equal(t, "Complete Event Management", Services()[0].Features[0])
}
