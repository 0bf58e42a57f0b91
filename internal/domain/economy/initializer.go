package economy

import (
	"hash/fnv"
	"math"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
)

// Price derivation parameters.
const (
	// referencePopulation centers the population sigmoid: assets above it
	// count as large, below as small.
	referencePopulation = 1e8

	// basePeriodOffset is added to every good's base period before
	// per-asset shaping.
	basePeriodOffset = 100

	// maxPresenceRange caps the presence attribute so the safety discount
	// denominator (1 - range/30) stays strictly positive.
	maxPresenceRange = 25

	// maxShapingRadius caps the system radius so the period and variation
	// denominators stay strictly positive.
	maxShapingRadius = 190000
)

// systemAverage is the per-good scratch a system carries between passes 2-4.
type systemAverage struct {
	price           float64
	planetVariation float64
	count           int

	// neighborMean is the pass-3 one-hop average of adjacent systems'
	// pass-2 prices.
	neighborMean float64
}

// initializePrices derives every price field from planet and system
// attributes, in four passes over the whole universe: per-asset shaping,
// intra-system averaging, one hop of inter-system diffusion, final blend.
// Runs once at world load.
func (e *Economy) initializePrices() error {
	for _, sys := range e.universe.Systems() {
		for _, p := range sys.Planets {
			for i, good := range p.Commodities {
				if f := e.fields[p][i]; f != nil {
					derivePlanetField(p, good, f)
				}
			}
		}
	}

	averages := make(map[*galaxy.StarSystem]map[*commodity.Commodity]*systemAverage, e.universe.Len())
	for _, sys := range e.universe.Systems() {
		averages[sys] = e.averageSystem(sys)
	}

	for _, sys := range e.universe.Systems() {
		smoothWithNeighbors(sys, averages)
	}

	for _, sys := range e.universe.Systems() {
		if err := e.applyFinalBlend(sys, averages[sys]); err != nil {
			return err
		}
	}

	// The modifier tables are load-time scratch; drop them now.
	for _, c := range e.catalog.All() {
		c.ReleaseModifiers()
	}
	return nil
}

// derivePlanetField is pass 1: shape one field from the asset's own
// attributes and the good's modifier tables.
func derivePlanetField(p *galaxy.Planet, good *commodity.Commodity, f *PriceField) {
	f.Price = float64(good.RefPrice) * good.PlanetModifier(p.Class)
	f.PlanetVariation = 0.5
	f.SysVariation = 0

	// Base period plus a deterministic per-asset jitter so neighbouring
	// assets don't swing in lockstep.
	f.PlanetPeriod = (good.Period + basePeriodOffset) * (1 + periodJitter(p.Name))

	// Population scales from -1 (deserted) to +1 (crowded) on a log scale.
	// Prices move with it as the good's sensitivity dictates; variation
	// moves the opposite way, and busy assets swing more slowly.
	factor := -1.
	if p.Population > 0 {
		factor = math.Tanh((math.Log(float64(p.Population)) - math.Log(referencePopulation)) / 2)
	}
	f.Price *= 1 + factor*good.PopulationMod
	f.PlanetVariation *= 0.5 - factor*0.25
	f.PlanetPeriod *= 1 + factor*0.5

	f.Price *= good.FactionModifier(p.Faction)

	// Stronger presence means safer trade: lower prices, steadier swings.
	pr := math.Min(math.Max(p.PresenceRange, 0), maxPresenceRange)
	f.Price *= 1 - pr/30
	f.PlanetPeriod /= 1 - pr/30
}

// averageSystem is pass 2: scale fields by system attributes, then average
// across the system's assets and blend each asset a quarter toward itself,
// three quarters toward the mean.
func (e *Economy) averageSystem(sys *galaxy.StarSystem) map[*commodity.Commodity]*systemAverage {
	radius := math.Min(sys.Radius, maxShapingRadius)
	sysPeriod := 2000. / float64(len(sys.Jumps)+1)

	avg := make(map[*commodity.Commodity]*systemAverage)
	for _, p := range sys.Planets {
		for i, good := range p.Commodities {
			f := e.fields[p][i]
			if f == nil {
				continue
			}

			// Larger systems: further to travel, so pricier, and
			// slower but wider swings.
			f.Price *= 1 + radius/200000
			f.PlanetPeriod /= 1 - radius/200000
			f.PlanetVariation /= 1 - radius/300000

			// Hazard and obscurity both push prices up.
			f.Price *= 1 + sys.NebulaVolatility/6000
			f.Price *= 1 + sys.Interference/10000

			// More jump routes means more trade options, hence a
			// shorter system-wide cycle.
			f.SysPeriod = sysPeriod

			a := avg[good]
			if a == nil {
				a = &systemAverage{}
				avg[good] = a
			}
			a.price += f.Price
			a.planetVariation += f.PlanetVariation
			a.count++
		}
	}

	for _, a := range avg {
		a.price /= float64(a.count)
		a.planetVariation /= float64(a.count)
	}

	for _, p := range sys.Planets {
		for i, good := range p.Commodities {
			f := e.fields[p][i]
			if f == nil {
				continue
			}
			a := avg[good]
			f.Price = 0.25*f.Price + 0.75*a.price
			f.SysVariation = 0.2 * a.planetVariation
		}
	}
	return avg
}

// smoothWithNeighbors is pass 3: exactly one relaxation hop. Each system's
// per-good average is compared against the unweighted mean of directly
// adjacent systems that also carry the good; with no such neighbour the
// system's own average stands in.
func smoothWithNeighbors(sys *galaxy.StarSystem, averages map[*galaxy.StarSystem]map[*commodity.Commodity]*systemAverage) {
	for good, a := range averages[sys] {
		sum := 0.
		n := 0
		for _, neighbor := range sys.Adjacent() {
			if na, ok := averages[neighbor][good]; ok {
				sum += na.price
				n++
			}
		}
		if n > 0 {
			a.neighborMean = sum / float64(n)
		} else {
			a.neighborMean = a.price
		}
	}
}

// applyFinalBlend is pass 4: fold the neighbour mean into the system average,
// re-anchor each asset on it, and convert the fractional variations into
// absolute credits.
func (e *Economy) applyFinalBlend(sys *galaxy.StarSystem, avg map[*commodity.Commodity]*systemAverage) error {
	for _, a := range avg {
		a.price = 0.5 * (a.price + a.neighborMean)
	}

	for _, p := range sys.Planets {
		for i, good := range p.Commodities {
			f := e.fields[p][i]
			if f == nil {
				continue
			}
			a := avg[good]
			f.Price = 0.25*f.Price + 0.75*a.price
			f.PlanetVariation = 0.1 * (0.5*a.planetVariation + 0.5*f.PlanetVariation)
			f.PlanetVariation *= f.Price
			f.SysVariation *= f.Price

			if err := f.Validate(); err != nil {
				return &ErrBadPriceField{Commodity: good.Name, Planet: p.Name, Cause: err}
			}
		}
	}
	return nil
}

// periodJitter maps an asset name onto a small deterministic factor in
// (-0.16, +0.16). No rhyme or reason, just stable variability.
func periodJitter(name string) float64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return (float64(h.Sum32()%31) - 15) / 100
}
