package catalog

// Catalog is a fixed, order-stable list of drinks. It has no mutating methods.
type Catalog struct {
	name     string
	features []Feature
	items    []Item
}

func New(name string, features []Feature, items []Item) *Catalog {
	return &Catalog{
		name:     name,
		features: append([]Feature{}, features...),
		items:    append([]Item{}, items...),
	}
}

func (c *Catalog) Name() string {
	return c.name
}

// Features lists the features every item of the catalog carries a value for.
func (c *Catalog) Features() []Feature {
	return append([]Feature{}, c.features...)
}

func (c *Catalog) HasFeature(f Feature) bool {
	for _, feature := range c.features {
		if feature == f {
			return true
		}
	}

	return false
}

// All returns a copy of the items in catalog order.
func (c *Catalog) All() []Item {
	return append([]Item{}, c.items...)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Find returns the first item with the given name and temperature code.
func (c *Catalog) Find(name string, temperature int) (Item, bool) {
	for _, item := range c.items {
		if item.Name == name && item.Temperature == temperature {
			return item, true
		}
	}

	return Item{}, false
}
