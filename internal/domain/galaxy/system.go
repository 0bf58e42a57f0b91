package galaxy

import "github.com/meridian-sim/tradewinds/internal/domain/commodity"

// StarSystem is a node in the trade network. Index is its position in the
// universe arena; the equilibrium solver addresses matrix rows and columns by
// it, so it is assigned once at load time and never changes.
type StarSystem struct {
	Name  string
	Index int

	// Environmental scalars affecting jump resistance and price shaping.
	Radius           float64
	NebulaDensity    float64
	NebulaVolatility float64
	Interference     float64

	// Faction controlling the system; empty means unaffiliated.
	Faction string

	Jumps   []*JumpRoute
	Planets []*Planet

	// potentials holds the solver output per priced good. Written only by
	// the equilibrium solver, replaced as a whole slice on every solve.
	potentials []float64
}

// JumpRoute is a directed half of an undirected traversal link. Its
// resistance carries no state; it is derived from the two endpoints whenever
// the admittance matrix is rebuilt.
type JumpRoute struct {
	From *StarSystem
	To   *StarSystem
}

// AddPlanet attaches an asset to the system and backlinks it
func (s *StarSystem) AddPlanet(p *Planet) {
	p.System = s
	s.Planets = append(s.Planets, p)
}

// Adjacent returns the systems one jump away, in route order
func (s *StarSystem) Adjacent() []*StarSystem {
	out := make([]*StarSystem, len(s.Jumps))
	for i, j := range s.Jumps {
		out[i] = j.To
	}
	return out
}

// FindPlanet returns an asset by name
func (s *StarSystem) FindPlanet(name string) (*Planet, error) {
	for _, p := range s.Planets {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, &ErrUnknownPlanet{System: s.Name, Name: name}
}

// Potential returns the solver potential for a priced-good index, or the
// neutral value 1 when the solver has not produced one.
func (s *StarSystem) Potential(pricedIdx int) float64 {
	if pricedIdx < 0 || pricedIdx >= len(s.potentials) {
		return 1
	}
	return s.potentials[pricedIdx]
}

// SetPotentials atomically replaces the potential vector. The solver builds
// the full replacement before calling this, so readers never observe a
// partially written vector.
func (s *StarSystem) SetPotentials(p []float64) {
	s.potentials = p
}

// Planet is a tradeable asset inside a system. Each offered commodity gets an
// independent price field, tracked by the economy keyed on this planet.
type Planet struct {
	Name          string
	Class         string
	Population    int64
	PresenceRange float64
	Faction       string

	System      *StarSystem
	Commodities []*commodity.Commodity
}

// Offers returns the position of a good in the planet's commodity list
func (p *Planet) Offers(c *commodity.Commodity) (int, bool) {
	for i, pc := range p.Commodities {
		if pc == c {
			return i, true
		}
	}
	return 0, false
}
