package economy

import (
	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// IntensityFunc models the net production/consumption pressure injected at a
// system node for one good. It feeds the right-hand side of the equilibrium
// solve; a production model plugs in here without touching the solver.
type IntensityFunc func(sys *galaxy.StarSystem, good *commodity.Commodity, elapsed shared.GameTime) float64

// ZeroIntensity is the default model: no production signal, pure diffusion of
// the baseline.
func ZeroIntensity(*galaxy.StarSystem, *commodity.Commodity, shared.GameTime) float64 {
	return 0
}
