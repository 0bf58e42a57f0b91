package economy

import (
	"log"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// Economy is the world-state aggregate for the trade simulation. It owns the
// price fields, the equilibrium solver, and the simulated clock, and it is
// passed by reference to everything that needs them; there are no
// package-level registries.
type Economy struct {
	universe *galaxy.Universe
	catalog  *commodity.Catalog
	solver   *Solver

	priced    []*commodity.Commodity
	pricedIdx map[*commodity.Commodity]int

	// fields holds one price field per (planet, priced good), parallel to
	// each planet's commodity list. Entries for unpriced goods stay nil:
	// a good with a zero reference price never gets a field.
	fields map[*galaxy.Planet][]*PriceField

	now         shared.GameTime
	initialized bool
}

// New creates the economy over a loaded universe and catalog. Price fields
// are allocated here; their parameters are derived by Initialize.
func New(u *galaxy.Universe, cat *commodity.Catalog, intensity IntensityFunc) *Economy {
	priced := cat.Priced()
	idx := make(map[*commodity.Commodity]int, len(priced))
	for i, c := range priced {
		idx[c] = i
	}

	fields := make(map[*galaxy.Planet][]*PriceField)
	for _, sys := range u.Systems() {
		for _, p := range sys.Planets {
			fs := make([]*PriceField, len(p.Commodities))
			for i, c := range p.Commodities {
				if c.Priced() {
					fs[i] = &PriceField{}
				}
			}
			fields[p] = fs
		}
	}

	return &Economy{
		universe:  u,
		catalog:   cat,
		solver:    NewSolver(u, priced, intensity),
		priced:    priced,
		pricedIdx: idx,
		fields:    fields,
	}
}

// Initialize runs the four-pass price derivation and the first network solve.
// Idempotent: repeated calls after a successful run are no-ops.
func (e *Economy) Initialize() error {
	if e.initialized {
		return nil
	}
	if err := e.initializePrices(); err != nil {
		return err
	}
	if err := e.solver.Refresh(e.now); err != nil {
		// Degraded but usable: potentials stay at the neutral value.
		log.Printf("economy: initial network solve failed, continuing with neutral potentials")
	}
	e.initialized = true
	return nil
}

// Universe returns the owned world state
func (e *Economy) Universe() *galaxy.Universe {
	return e.universe
}

// Catalog returns the commodity catalog
func (e *Economy) Catalog() *commodity.Catalog {
	return e.catalog
}

// Priced returns the goods participating in the economy
func (e *Economy) Priced() []*commodity.Commodity {
	return e.priced
}

// Now returns the current simulated time
func (e *Economy) Now() shared.GameTime {
	return e.now
}

// Advance moves simulated time forward by dt raw units
func (e *Economy) Advance(dt int64) {
	e.now = e.now.Add(dt)
}

// Tick advances time and applies any queued network refresh. Called once per
// simulation step by the driving loop.
func (e *Economy) Tick(dt int64) {
	e.Advance(dt)
	if err := e.solver.ExecQueued(e.now); err != nil {
		log.Printf("economy: queued refresh failed, keeping previous potentials")
	}
}

// QueueRefresh marks the network dirty. The actual re-solve happens on the
// next tick, so bursts of changes cost one solve.
func (e *Economy) QueueRefresh() {
	e.solver.QueueRefresh()
}

// RefreshNetwork rebuilds and re-solves immediately, bypassing the queue
func (e *Economy) RefreshNetwork() error {
	return e.solver.Refresh(e.now)
}

// Field returns the price field for an (asset, good) pair, or false when the
// pair is not priced there.
func (e *Economy) Field(p *galaxy.Planet, c *commodity.Commodity) (*PriceField, bool) {
	fs, ok := e.fields[p]
	if !ok {
		return nil, false
	}
	i, ok := p.Offers(c)
	if !ok || fs[i] == nil {
		return nil, false
	}
	return fs[i], true
}

// PriceAtTime returns the price of a good at an asset at a simulated
// timestamp. A pair with no price field reports the miss and returns zero.
func (e *Economy) PriceAtTime(c *commodity.Commodity, p *galaxy.Planet, t shared.GameTime) (int64, error) {
	f, ok := e.Field(p, c)
	if !ok {
		log.Printf("economy: price for %q not known at %q", c.Name, p.Name)
		return 0, &ErrPriceNotTracked{Commodity: c.Name, Planet: p.Name}
	}
	return PriceAt(f, p.System.Potential(e.pricedIdx[c]), t), nil
}

// PriceNow returns the price at the current simulated time
func (e *Economy) PriceNow(c *commodity.Commodity, p *galaxy.Planet) (int64, error) {
	return e.PriceAtTime(c, p, e.now)
}
