package catalog

import "github.com/shopspring/decimal"

// Entry is a single orderable menu item.
type Entry struct {
	Name      string
	UnitPrice decimal.Decimal
}

// Catalog is the static menu the billing form offers. Entries keep their
// declaration order, which is also the display order.
type Catalog struct {
	entries []Entry
	byName  map[string]Entry
}

func New(entries []Entry) *Catalog {
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	return &Catalog{entries: entries, byName: byName}
}

// Default returns the built-in Village Kitchen menu.
func Default() *Catalog {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	return New([]Entry{
		{Name: "Veg Biryani", UnitPrice: price(150)},
		{Name: "Chicken Biryani", UnitPrice: price(220)},
		{Name: "Paneer Butter Masala", UnitPrice: price(180)},
		{Name: "Dal Tadka", UnitPrice: price(120)},
		{Name: "Butter Naan", UnitPrice: price(35)},
		{Name: "Jeera Rice", UnitPrice: price(90)},
		{Name: "Raita", UnitPrice: price(40)},
		{Name: "Gulab Jamun", UnitPrice: price(60)},
		{Name: "Masala Chai", UnitPrice: price(20)},
	})
}

// Entries returns the menu in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Lookup finds an entry by its exact name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}
