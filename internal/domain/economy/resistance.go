package economy

import "github.com/meridian-sim/tradewinds/internal/domain/galaxy"

// Nodal analysis parameters. Systems are nodes, jump routes are resistances,
// production is node intensity.
const (
	// baseResistance is the resistance of any jump route before
	// environmental and political adjustments.
	baseResistance = 30.

	// selfResistance dampens every node; its conductance lands on the
	// diagonal, which keeps the admittance matrix non-singular even for a
	// system with no jump routes.
	selfResistance = 3.

	// factionMod is the fraction of baseResistance added between hostile
	// factions and removed between allies.
	factionMod = 0.1
)

// jumpResistance computes the live resistance of the route between two
// systems. Never cached: faction and nebula changes must be reflected on the
// next matrix rebuild without manual invalidation.
func jumpResistance(a, b *galaxy.StarSystem, standings *galaxy.StandingTable) float64 {
	r := baseResistance

	// Density shouldn't affect much; volatility should.
	r += (a.NebulaDensity + b.NebulaDensity) / 1000.
	r += (a.NebulaVolatility + b.NebulaVolatility) / 100.

	switch {
	case standings.Hostile(a.Faction, b.Faction):
		r += factionMod * baseResistance
	case standings.Allied(a.Faction, b.Faction):
		r -= factionMod * baseResistance
	}

	return r
}
