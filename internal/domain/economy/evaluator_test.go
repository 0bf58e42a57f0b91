package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

func flatField(price float64) *economy.PriceField {
	return &economy.PriceField{
		Price:        price,
		PlanetPeriod: 250,
		SysPeriod:    500,
	}
}

func TestPriceAt_Deterministic(t *testing.T) {
	f := &economy.PriceField{
		Price:           500,
		PlanetVariation: 40,
		PlanetPeriod:    250,
		SysVariation:    12,
		SysPeriod:       500,
	}

	ts := shared.GameTime(37_000_000)
	first := economy.PriceAt(f, 1, ts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, economy.PriceAt(f, 1, ts))
	}
}

func TestPriceAt_ZeroVariationIsConstant(t *testing.T) {
	f := flatField(500)

	for _, ts := range []shared.GameTime{0, 1, 10_000_000, 123_456_789} {
		assert.Equal(t, int64(500), economy.PriceAt(f, 1, ts))
	}
}

func TestPriceAt_PeriodicInStandardTimePeriods(t *testing.T) {
	f := &economy.PriceField{
		Price:           500,
		PlanetVariation: 40,
		PlanetPeriod:    250,
		SysVariation:    12,
		SysPeriod:       500,
	}

	// 500 periods is a whole multiple of both component periods
	cycle := int64(500 * shared.UnitsPerPeriod)
	for _, ts := range []shared.GameTime{0, 7_000_000, 421_337_000} {
		assert.Equal(t, economy.PriceAt(f, 1, ts), economy.PriceAt(f, 1, ts.Add(cycle)))
	}
}

func TestPriceAt_PotentialScalesThePrice(t *testing.T) {
	f := flatField(400)

	assert.Equal(t, int64(400), economy.PriceAt(f, 1, 0))
	assert.Equal(t, int64(500), economy.PriceAt(f, 1.25, 0))
	assert.Equal(t, int64(300), economy.PriceAt(f, 0.75, 0))
}

func TestPriceAt_RoundsToNearestCredit(t *testing.T) {
	assert.Equal(t, int64(100), economy.PriceAt(flatField(100.4), 1, 0))
	assert.Equal(t, int64(101), economy.PriceAt(flatField(100.5), 1, 0))
	assert.Equal(t, int64(101), economy.PriceAt(flatField(100.6), 1, 0))
}

func TestPriceAt_VariationStaysWithinAmplitude(t *testing.T) {
	f := &economy.PriceField{
		Price:           500,
		PlanetVariation: 40,
		PlanetPeriod:    250,
		SysVariation:    12,
		SysPeriod:       500,
	}

	for ts := shared.GameTime(0); ts < 3_000_000_000; ts = ts.Add(17_000_000) {
		p := economy.PriceAt(f, 1, ts)
		assert.GreaterOrEqual(t, p, int64(500-52))
		assert.LessOrEqual(t, p, int64(500+53))
	}
}
