package commodity

// Commodity is a tradeable good. The reference price anchors every derived
// price field; goods with a non-positive reference price are catalogued but
// never priced.
type Commodity struct {
	Name        string
	Description string

	// RefPrice is the catalogue reference price in credits.
	RefPrice int64

	// PopulationMod scales how strongly an asset's population pushes the
	// price up (positive) or down (negative).
	PopulationMod float64

	// Period is the base variation period in standard time periods.
	Period float64

	// LastPurchasePrice is the price the player last paid for this good.
	// Retained across sessions for display purposes only.
	LastPurchasePrice int64

	// Load-time modifier tables, keyed by planet class and faction name.
	// Released after price initialization; nil afterwards.
	planetModifiers  map[string]float64
	factionModifiers map[string]float64
}

// New creates a commodity with the given modifier tables. Either table may be
// nil.
func New(name string, refPrice int64, planetMods, factionMods map[string]float64) *Commodity {
	return &Commodity{
		Name:             name,
		RefPrice:         refPrice,
		Period:           DefaultPeriod,
		planetModifiers:  planetMods,
		factionModifiers: factionMods,
	}
}

// DefaultPeriod is the base variation period used when the catalogue does not
// specify one.
const DefaultPeriod = 200

// Priced reports whether the good participates in the economy at all.
func (c *Commodity) Priced() bool {
	return c.RefPrice > 0
}

// PlanetModifier returns the price multiplier for a planet class, or 1 when
// the class has no entry or the tables have been released.
func (c *Commodity) PlanetModifier(class string) float64 {
	if v, ok := c.planetModifiers[class]; ok {
		return v
	}
	return 1
}

// FactionModifier returns the price multiplier for a faction, or 1 when the
// faction has no entry or the tables have been released.
func (c *Commodity) FactionModifier(faction string) float64 {
	if v, ok := c.factionModifiers[faction]; ok {
		return v
	}
	return 1
}

// SetModifiers replaces both modifier tables. Used by catalogue loading.
func (c *Commodity) SetModifiers(planetMods, factionMods map[string]float64) {
	c.planetModifiers = planetMods
	c.factionModifiers = factionMods
}

// ReleaseModifiers drops the load-time modifier tables. They are scratch data
// for price initialization, not simulation state.
func (c *Commodity) ReleaseModifiers() {
	c.planetModifiers = nil
	c.factionModifiers = nil
}
