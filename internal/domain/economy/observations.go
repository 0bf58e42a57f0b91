package economy

import (
	"math"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// RecordObservation folds the current price of a good at an asset into its
// running statistics. Keyed by timestamp: observing the same instant twice
// changes nothing, so repeated queries within one landing count once.
func (e *Economy) RecordObservation(p *galaxy.Planet, c *commodity.Commodity, t shared.GameTime) {
	f, ok := e.Field(p, c)
	if !ok {
		return
	}
	if !f.UpdatedAt.Before(t) {
		return
	}
	f.UpdatedAt = t
	price := PriceAt(f, p.System.Potential(e.pricedIdx[c]), t)
	f.Count++
	f.Sum += float64(price)
	f.Sum2 += float64(price) * float64(price)
}

// RecordVisit records every good offered at the asset at the current
// simulated time. This is the landing hook.
func (e *Economy) RecordVisit(p *galaxy.Planet) {
	for _, c := range p.Commodities {
		e.RecordObservation(p, c, e.now)
	}
}

// PlanetAverage returns the observed mean and standard deviation of a good at
// one asset. ok is false, and both values zero, when the pair has never been
// observed or is not priced there.
func (e *Economy) PlanetAverage(c *commodity.Commodity, p *galaxy.Planet) (mean int64, stddev float64, ok bool) {
	f, found := e.Field(p, c)
	if !found {
		return 0, 0, false
	}
	return f.Stats()
}

// GalaxyAverage aggregates a good across every asset where the player has
// observed it at least once: the mean of per-asset means, with their
// variances combined.
func (e *Economy) GalaxyAverage(c *commodity.Commodity) (mean int64, stddev float64, ok bool) {
	av := 0.
	av2 := 0.
	n := 0
	for _, sys := range e.universe.Systems() {
		for _, p := range sys.Planets {
			f, found := e.Field(p, c)
			if !found || f.Count == 0 {
				continue
			}
			m := f.Sum / float64(f.Count)
			av += m
			av2 += m * m
			n++
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	av /= float64(n)
	v := av2/float64(n) - av*av
	if v < 0 {
		v = 0
	}
	return int64(av + 0.5), math.Sqrt(v), true
}

// ResetAllObservations zeroes every accumulator and every good's last
// purchase price. Used when starting a new game state, and before applying a
// loaded one.
func (e *Economy) ResetAllObservations() {
	for _, fs := range e.fields {
		for _, f := range fs {
			if f != nil {
				f.ResetObservations()
			}
		}
	}
	for _, c := range e.catalog.All() {
		c.LastPurchasePrice = 0
	}
}

// RestoreObservation applies one persisted accumulator row. Unknown names
// return the lookup error so the caller can report and skip the row.
func (e *Economy) RestoreObservation(system, planet, good string, sum, sum2 float64, count int64, updatedAt shared.GameTime) error {
	sys, err := e.universe.FindSystem(system)
	if err != nil {
		return err
	}
	p, err := sys.FindPlanet(planet)
	if err != nil {
		return err
	}
	c, err := e.catalog.Get(good)
	if err != nil {
		return err
	}
	f, ok := e.Field(p, c)
	if !ok {
		return &ErrPriceNotTracked{Commodity: good, Planet: planet}
	}
	f.Sum = sum
	f.Sum2 = sum2
	f.Count = count
	f.UpdatedAt = updatedAt
	return nil
}
