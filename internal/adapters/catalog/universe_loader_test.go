package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sim/tradewinds/internal/adapters/catalog"
	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
)

func testCatalogue(t *testing.T) *commodity.Catalog {
	t.Helper()
	cat := commodity.NewCatalog()
	require.NoError(t, cat.Add(commodity.New("Food", 500, nil, nil)))
	require.NoError(t, cat.Add(commodity.New("Ore", 800, nil, nil)))
	return cat
}

func TestLoadUniverse(t *testing.T) {
	path := writeDoc(t, "universe.yaml", `
factions:
  - name: Consortium
    allies: [Guild]
    enemies: [Syndicate]
systems:
  - name: Alpha
    radius: 15000
    faction: Consortium
    jumps: [Beta]
    planets:
      - name: Haven
        class: agri
        population: 2000000
        presence_range: 10
        faction: Consortium
        commodities: [Food, Ore]
  - name: Beta
    radius: 22000
    nebula_density: 200
    nebula_volatility: 25
    interference: 300
    faction: Syndicate
    planets:
      - name: Drift
        population: 450000000
        commodities: [Ore]
`)

	u, err := catalog.LoadUniverse(path, testCatalogue(t))
	require.NoError(t, err)
	require.Equal(t, 2, u.Len())

	assert.True(t, u.Standings.Hostile("Consortium", "Syndicate"))
	assert.True(t, u.Standings.Allied("Guild", "Consortium"))

	alpha, err := u.FindSystem("Alpha")
	require.NoError(t, err)
	beta, err := u.FindSystem("Beta")
	require.NoError(t, err)

	// The forward jump reference links both directions
	require.Len(t, alpha.Jumps, 1)
	require.Len(t, beta.Jumps, 1)
	assert.Same(t, beta, alpha.Jumps[0].To)

	haven, err := alpha.FindPlanet("Haven")
	require.NoError(t, err)
	assert.Equal(t, "agri", haven.Class)
	assert.EqualValues(t, 2_000_000, haven.Population)
	assert.Len(t, haven.Commodities, 2)

	drift, err := beta.FindPlanet("Drift")
	require.NoError(t, err)
	assert.Len(t, drift.Commodities, 1)
	assert.Equal(t, "Ore", drift.Commodities[0].Name)
}

func TestLoadUniverse_SkipsUnknownReferences(t *testing.T) {
	path := writeDoc(t, "universe.yaml", `
systems:
  - name: Alpha
    jumps: [Atlantis]
    planets:
      - name: Haven
        commodities: [Food, Unobtainium]
`)

	u, err := catalog.LoadUniverse(path, testCatalogue(t))
	require.NoError(t, err)

	alpha, err := u.FindSystem("Alpha")
	require.NoError(t, err)
	assert.Empty(t, alpha.Jumps, "jump to an unknown system is dropped")

	haven, err := alpha.FindPlanet("Haven")
	require.NoError(t, err)
	require.Len(t, haven.Commodities, 1, "unknown commodity is dropped")
	assert.Equal(t, "Food", haven.Commodities[0].Name)
}

func TestLoadUniverse_SkipsMalformedSystems(t *testing.T) {
	path := writeDoc(t, "universe.yaml", `
systems:
  - radius: 9000
  - name: Beta
`)

	u, err := catalog.LoadUniverse(path, testCatalogue(t))
	require.NoError(t, err)
	assert.Equal(t, 1, u.Len())
}
