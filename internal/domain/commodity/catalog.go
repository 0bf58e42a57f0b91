package commodity

// Catalog is the immutable set of commodity definitions loaded at startup.
// Iteration order is the catalogue document order, which keeps every derived
// index stable.
type Catalog struct {
	commodities []*Commodity
	byName      map[string]*Commodity
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Commodity)}
}

// Add registers a commodity. Duplicate names are rejected.
func (cat *Catalog) Add(c *Commodity) error {
	if c.Name == "" {
		return &ErrInvalidCommodity{Reason: "missing name"}
	}
	if _, exists := cat.byName[c.Name]; exists {
		return &ErrInvalidCommodity{Name: c.Name, Reason: "duplicate name"}
	}
	cat.commodities = append(cat.commodities, c)
	cat.byName[c.Name] = c
	return nil
}

// Get returns a commodity by name
func (cat *Catalog) Get(name string) (*Commodity, error) {
	c, ok := cat.byName[name]
	if !ok {
		return nil, &ErrUnknownCommodity{Name: name}
	}
	return c, nil
}

// All returns every commodity in catalogue order
func (cat *Catalog) All() []*Commodity {
	return cat.commodities
}

// Priced returns the commodities that participate in the economy, in
// catalogue order. The index of a good in this slice is its priced index,
// used to address potential vectors.
func (cat *Catalog) Priced() []*Commodity {
	var priced []*Commodity
	for _, c := range cat.commodities {
		if c.Priced() {
			priced = append(priced, c)
		}
	}
	return priced
}

// Len returns the number of catalogued commodities
func (cat *Catalog) Len() int {
	return len(cat.commodities)
}
