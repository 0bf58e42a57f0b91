package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sim/tradewinds/internal/domain/economy"
)

func TestPriceField_Validate(t *testing.T) {
	valid := &economy.PriceField{Price: 500, PlanetVariation: 10, PlanetPeriod: 250, SysVariation: 5, SysPeriod: 500}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		field economy.PriceField
	}{
		{"negative planet variation", economy.PriceField{PlanetVariation: -1, PlanetPeriod: 250, SysPeriod: 500}},
		{"negative system variation", economy.PriceField{SysVariation: -1, PlanetPeriod: 250, SysPeriod: 500}},
		{"zero planet period", economy.PriceField{PlanetPeriod: 0, SysPeriod: 500}},
		{"zero system period", economy.PriceField{PlanetPeriod: 250, SysPeriod: 0}},
		{"negative planet period", economy.PriceField{PlanetPeriod: -250, SysPeriod: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.field.Validate())
		})
	}
}

func TestPriceField_StatsWithNoObservations(t *testing.T) {
	f := &economy.PriceField{Price: 500, PlanetPeriod: 250, SysPeriod: 500}

	mean, stddev, ok := f.Stats()
	assert.False(t, ok)
	assert.Zero(t, mean)
	assert.Zero(t, stddev)
}

func TestPriceField_StatsAccumulate(t *testing.T) {
	f := &economy.PriceField{
		Count: 3,
		Sum:   100 + 110 + 120,
		Sum2:  100*100 + 110*110 + 120*120,
	}

	mean, stddev, ok := f.Stats()
	require.True(t, ok)
	assert.Equal(t, int64(110), mean)
	assert.InDelta(t, 8.164965, stddev, 1e-5)
}

func TestPriceField_StatsConstantObservationsHaveZeroSpread(t *testing.T) {
	f := &economy.PriceField{Count: 4, Sum: 4 * 250, Sum2: 4 * 250 * 250}

	mean, stddev, ok := f.Stats()
	require.True(t, ok)
	assert.Equal(t, int64(250), mean)
	assert.Zero(t, stddev)
}

func TestPriceField_ResetObservations(t *testing.T) {
	f := &economy.PriceField{Count: 3, Sum: 330, Sum2: 36500, UpdatedAt: 99}

	f.ResetObservations()

	assert.Zero(t, f.Count)
	assert.Zero(t, f.Sum)
	assert.Zero(t, f.Sum2)
	assert.Zero(t, f.UpdatedAt)
}
