package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagekitchen/billing/internal/catalog"
)

func TestCatalog_Lookup(t *testing.T) {
	c := catalog.Default()

	e, ok := c.Lookup("Veg Biryani")
	require.True(t, ok)
	assert.Equal(t, "Veg Biryani", e.Name)
	assert.Equal(t, "150", e.UnitPrice.String())

	_, ok = c.Lookup("Sushi")
	assert.False(t, ok)
}

func TestCatalog_EntriesKeepOrder(t *testing.T) {
	c := catalog.Default()

	entries := c.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Veg Biryani", entries[0].Name)

	// The returned slice is a copy; mutating it leaves the catalog intact.
	entries[0].Name = "mutated"
	fresh := c.Entries()
	assert.Equal(t, "Veg Biryani", fresh[0].Name)
}
