package helpers

import (
	"testing"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
)

// NewTestCatalog builds a small catalogue: two priced goods and one good with
// no reference price that must never enter the economy.
func NewTestCatalog(t *testing.T) *commodity.Catalog {
	t.Helper()

	cat := commodity.NewCatalog()

	food := commodity.New("Food", 500,
		map[string]float64{"agri": 1.2},
		map[string]float64{"Consortium": 0.9},
	)
	food.PopulationMod = -0.1

	ore := commodity.New("Ore", 800, nil, nil)
	ore.PopulationMod = 0.2

	salvage := commodity.New("Salvage", 0, nil, nil)

	for _, c := range []*commodity.Commodity{food, ore, salvage} {
		if err := cat.Add(c); err != nil {
			t.Fatalf("failed to build test catalog: %v", err)
		}
	}
	return cat
}

// NewTestUniverse builds two linked systems, each with a populated asset
// offering every catalogued good.
func NewTestUniverse(t *testing.T, cat *commodity.Catalog) *galaxy.Universe {
	t.Helper()

	u := galaxy.NewUniverse()
	u.Standings.DeclareEnemies("Consortium", "Syndicate")

	alpha := &galaxy.StarSystem{
		Name:    "Alpha",
		Radius:  15000,
		Faction: "Consortium",
	}
	beta := &galaxy.StarSystem{
		Name:             "Beta",
		Radius:           22000,
		NebulaDensity:    200,
		NebulaVolatility: 25,
		Interference:     300,
		Faction:          "Syndicate",
	}
	for _, s := range []*galaxy.StarSystem{alpha, beta} {
		if err := u.AddSystem(s); err != nil {
			t.Fatalf("failed to build test universe: %v", err)
		}
	}

	alpha.AddPlanet(&galaxy.Planet{
		Name:          "Haven",
		Class:         "agri",
		Population:    2_000_000,
		PresenceRange: 10,
		Faction:       "Consortium",
		Commodities:   cat.All(),
	})
	beta.AddPlanet(&galaxy.Planet{
		Name:          "Drift",
		Class:         "industrial",
		Population:    450_000_000,
		PresenceRange: 4,
		Faction:       "Syndicate",
		Commodities:   cat.All(),
	})

	if err := u.AddJump(alpha, beta); err != nil {
		t.Fatalf("failed to link test systems: %v", err)
	}
	return u
}

// NewTestEconomy builds and initializes an economy over the fixture world
func NewTestEconomy(t *testing.T) *economy.Economy {
	t.Helper()

	cat := NewTestCatalog(t)
	u := NewTestUniverse(t, cat)
	econ := economy.New(u, cat, nil)
	if err := econ.Initialize(); err != nil {
		t.Fatalf("failed to initialize test economy: %v", err)
	}
	return econ
}
