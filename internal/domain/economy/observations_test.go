package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sim/tradewinds/test/helpers"
)

func TestRecordObservation_SameInstantCountsOnce(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")
	c, _ := econ.Catalog().Get("Food")

	econ.RecordObservation(p, c, 5_000_000)
	econ.RecordObservation(p, c, 5_000_000)
	econ.RecordObservation(p, c, 5_000_000)

	f, ok := econ.Field(p, c)
	require.True(t, ok)
	assert.EqualValues(t, 1, f.Count)
}

func TestRecordObservation_EarlierInstantIsIgnored(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")
	c, _ := econ.Catalog().Get("Food")

	econ.RecordObservation(p, c, 5_000_000)
	econ.RecordObservation(p, c, 4_000_000)

	f, _ := econ.Field(p, c)
	assert.EqualValues(t, 1, f.Count)

	econ.RecordObservation(p, c, 6_000_000)
	assert.EqualValues(t, 2, f.Count)
}

func TestRecordObservation_MatchesEvaluatedPrice(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")
	c, _ := econ.Catalog().Get("Food")

	price, err := econ.PriceAtTime(c, p, 5_000_000)
	require.NoError(t, err)
	econ.RecordObservation(p, c, 5_000_000)

	mean, stddev, ok := econ.PlanetAverage(c, p)
	require.True(t, ok)
	assert.Equal(t, price, mean)
	assert.Zero(t, stddev)
}

func TestRecordObservation_UnpricedGoodIsIgnored(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")
	salvage, _ := econ.Catalog().Get("Salvage")

	econ.RecordObservation(p, salvage, 5_000_000)

	_, _, ok := econ.PlanetAverage(salvage, p)
	assert.False(t, ok)
}

func TestRecordVisit_CoversEveryPricedGood(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")

	econ.Tick(5_000_000)
	econ.RecordVisit(p)

	for _, c := range p.Commodities {
		_, _, ok := econ.PlanetAverage(c, p)
		assert.Equal(t, c.Priced(), ok, c.Name)
	}
}

func TestGalaxyAverage_AggregatesAcrossObservedAssets(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	c, _ := econ.Catalog().Get("Food")

	_, _, ok := econ.GalaxyAverage(c)
	assert.False(t, ok, "no observations yet")

	alpha, _ := econ.Universe().FindSystem("Alpha")
	haven, _ := alpha.FindPlanet("Haven")
	beta, _ := econ.Universe().FindSystem("Beta")
	drift, _ := beta.FindPlanet("Drift")

	econ.RecordObservation(haven, c, 5_000_000)
	econ.RecordObservation(drift, c, 5_000_000)

	havenMean, _, _ := econ.PlanetAverage(c, haven)
	driftMean, _, _ := econ.PlanetAverage(c, drift)

	mean, _, ok := econ.GalaxyAverage(c)
	require.True(t, ok)
	assert.Equal(t, int64(float64(havenMean+driftMean)/2+0.5), mean)
}

func TestResetAllObservations(t *testing.T) {
	econ := helpers.NewTestEconomy(t)
	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")
	c, _ := econ.Catalog().Get("Food")

	c.LastPurchasePrice = 432
	econ.RecordObservation(p, c, 5_000_000)

	econ.ResetAllObservations()

	_, _, ok := econ.PlanetAverage(c, p)
	assert.False(t, ok)
	assert.Zero(t, c.LastPurchasePrice)
}

func TestRestoreObservation(t *testing.T) {
	econ := helpers.NewTestEconomy(t)

	require.NoError(t, econ.RestoreObservation("Alpha", "Haven", "Food", 900, 272_000, 3, 7_000_000))

	sys, _ := econ.Universe().FindSystem("Alpha")
	p, _ := sys.FindPlanet("Haven")
	c, _ := econ.Catalog().Get("Food")
	f, ok := econ.Field(p, c)
	require.True(t, ok)
	assert.EqualValues(t, 3, f.Count)
	assert.EqualValues(t, 7_000_000, f.UpdatedAt)

	mean, _, ok := econ.PlanetAverage(c, p)
	require.True(t, ok)
	assert.Equal(t, int64(300), mean)
}

func TestRestoreObservation_UnknownNames(t *testing.T) {
	econ := helpers.NewTestEconomy(t)

	assert.Error(t, econ.RestoreObservation("Nowhere", "Haven", "Food", 1, 1, 1, 0))
	assert.Error(t, econ.RestoreObservation("Alpha", "Mirage", "Food", 1, 1, 1, 0))
	assert.Error(t, econ.RestoreObservation("Alpha", "Haven", "Unobtainium", 1, 1, 1, 0))
	assert.Error(t, econ.RestoreObservation("Alpha", "Haven", "Salvage", 1, 1, 1, 0))
}
