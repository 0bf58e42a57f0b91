package economy

import (
	"math"

	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// PriceAt evaluates the instantaneous price of a field at a simulated
// timestamp, scaled by the system potential produced by the equilibrium
// solver (1 when the solver has not run). Pure and deterministic: identical
// inputs always return the identical credit amount.
func PriceAt(f *PriceField, potential float64, t shared.GameTime) int64 {
	stp := t.Periods()
	price := f.Price +
		f.PlanetVariation*math.Sin(2*math.Pi*stp/f.PlanetPeriod) +
		f.SysVariation*math.Sin(2*math.Pi*stp/f.SysPeriod)
	return int64(potential*price + 0.5)
}
