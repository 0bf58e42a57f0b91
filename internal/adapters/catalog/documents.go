// Package catalog loads the commodity catalogue and universe documents.
package catalog

// commodityDoc is the on-disk shape of one catalogue entry
type commodityDoc struct {
	Name          string             `yaml:"name" validate:"required"`
	Description   string             `yaml:"description"`
	Price         int64              `yaml:"price" validate:"gte=0"`
	PopulationMod float64            `yaml:"population_modifier"`
	Period        float64            `yaml:"period" validate:"gte=0"`
	PlanetMods    map[string]float64 `yaml:"planet_modifiers"`
	FactionMods   map[string]float64 `yaml:"faction_modifiers"`
}

// catalogDoc is the catalogue document root
type catalogDoc struct {
	Commodities []commodityDoc `yaml:"commodities"`
}

// factionDoc declares one faction and its diplomatic relations
type factionDoc struct {
	Name    string   `yaml:"name" validate:"required"`
	Allies  []string `yaml:"allies"`
	Enemies []string `yaml:"enemies"`
}

// planetDoc is the on-disk shape of one asset
type planetDoc struct {
	Name          string   `yaml:"name" validate:"required"`
	Class         string   `yaml:"class"`
	Population    int64    `yaml:"population" validate:"gte=0"`
	PresenceRange float64  `yaml:"presence_range" validate:"gte=0"`
	Faction       string   `yaml:"faction"`
	Commodities   []string `yaml:"commodities"`
}

// systemDoc is the on-disk shape of one system
type systemDoc struct {
	Name             string      `yaml:"name" validate:"required"`
	Radius           float64     `yaml:"radius" validate:"gte=0"`
	NebulaDensity    float64     `yaml:"nebula_density" validate:"gte=0"`
	NebulaVolatility float64     `yaml:"nebula_volatility" validate:"gte=0"`
	Interference     float64     `yaml:"interference" validate:"gte=0"`
	Faction          string      `yaml:"faction"`
	Jumps            []string    `yaml:"jumps"`
	Planets          []planetDoc `yaml:"planets"`
}

// universeDoc is the universe document root
type universeDoc struct {
	Factions []factionDoc `yaml:"factions"`
	Systems  []systemDoc  `yaml:"systems"`
}
