package economy

import (
	"fmt"
	"math"

	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// PriceField holds the closed-form price parameters for one (asset, good)
// pair, plus the running statistics of prices the player has actually seen.
// The parameters are derived once by the initializer; only the observation
// accumulators mutate afterwards.
type PriceField struct {
	// Price is the baseline in credits.
	Price float64

	// Asset-level sinusoidal component.
	PlanetVariation float64
	PlanetPeriod    float64

	// System-level sinusoidal component.
	SysVariation float64
	SysPeriod    float64

	// Observation accumulators.
	Count     int64
	Sum       float64
	Sum2      float64
	UpdatedAt shared.GameTime
}

// Validate checks the field invariants: variations non-negative, periods
// strictly positive. The evaluator divides by both periods, so a violation
// here is a fatal input error.
func (f *PriceField) Validate() error {
	if f.PlanetVariation < 0 || f.SysVariation < 0 {
		return fmt.Errorf("negative variation amplitude (planet=%g sys=%g)", f.PlanetVariation, f.SysVariation)
	}
	if f.PlanetPeriod <= 0 {
		return fmt.Errorf("non-positive planet period %g", f.PlanetPeriod)
	}
	if f.SysPeriod <= 0 {
		return fmt.Errorf("non-positive system period %g", f.SysPeriod)
	}
	return nil
}

// ResetObservations zeroes the accumulators
func (f *PriceField) ResetObservations() {
	f.Count = 0
	f.Sum = 0
	f.Sum2 = 0
	f.UpdatedAt = 0
}

// Stats returns the observed mean and standard deviation. The bool is false
// when the pair has never been observed, in which case both values are zero.
func (f *PriceField) Stats() (mean int64, stddev float64, ok bool) {
	if f.Count == 0 {
		return 0, 0, false
	}
	m := f.Sum / float64(f.Count)
	v := f.Sum2/float64(f.Count) - m*m
	if v < 0 {
		v = 0 // rounding noise on constant observations
	}
	return int64(m + 0.5), math.Sqrt(v), true
}
