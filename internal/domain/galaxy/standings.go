package galaxy

// StandingTable tracks diplomatic relations between factions. Relations are
// stored symmetrically: declaring A hostile to B also makes B hostile to A.
// The empty faction name means unaffiliated and is neutral toward everyone.
type StandingTable struct {
	allies  map[string]map[string]bool
	enemies map[string]map[string]bool
}

// NewStandingTable creates an empty standing table
func NewStandingTable() *StandingTable {
	return &StandingTable{
		allies:  make(map[string]map[string]bool),
		enemies: make(map[string]map[string]bool),
	}
}

func (s *StandingTable) set(m map[string]map[string]bool, a, b string) {
	if m[a] == nil {
		m[a] = make(map[string]bool)
	}
	m[a][b] = true
}

// DeclareAllies records a mutual alliance between two factions
func (s *StandingTable) DeclareAllies(a, b string) {
	if a == "" || b == "" || a == b {
		return
	}
	s.set(s.allies, a, b)
	s.set(s.allies, b, a)
}

// DeclareEnemies records mutual hostility between two factions
func (s *StandingTable) DeclareEnemies(a, b string) {
	if a == "" || b == "" || a == b {
		return
	}
	s.set(s.enemies, a, b)
	s.set(s.enemies, b, a)
}

// Allied reports whether two factions are mutually allied. Unaffiliated
// parties are never allied.
func (s *StandingTable) Allied(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return s.allies[a][b]
}

// Hostile reports whether two factions are mutually hostile. Unaffiliated
// parties are never hostile.
func (s *StandingTable) Hostile(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return s.enemies[a][b]
}
