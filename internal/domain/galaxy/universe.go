package galaxy

// Universe owns the system arena and the faction standing table. It is the
// explicitly passed world state: nothing in the economy reads systems from a
// package-level registry.
type Universe struct {
	systems   []*StarSystem
	byName    map[string]*StarSystem
	Standings *StandingTable
}

// NewUniverse creates an empty universe
func NewUniverse() *Universe {
	return &Universe{
		byName:    make(map[string]*StarSystem),
		Standings: NewStandingTable(),
	}
}

// AddSystem registers a system and assigns its arena index
func (u *Universe) AddSystem(s *StarSystem) error {
	if s.Name == "" {
		return &ErrInvalidSystem{Reason: "missing name"}
	}
	if _, exists := u.byName[s.Name]; exists {
		return &ErrInvalidSystem{Name: s.Name, Reason: "duplicate name"}
	}
	s.Index = len(u.systems)
	u.systems = append(u.systems, s)
	u.byName[s.Name] = s
	return nil
}

// FindSystem returns a system by name
func (u *Universe) FindSystem(name string) (*StarSystem, error) {
	s, ok := u.byName[name]
	if !ok {
		return nil, &ErrUnknownSystem{Name: name}
	}
	return s, nil
}

// Systems returns the arena in index order
func (u *Universe) Systems() []*StarSystem {
	return u.systems
}

// Len returns the number of systems
func (u *Universe) Len() int {
	return len(u.systems)
}

// AddJump inserts the symmetric route pair between two systems. Both
// directions are stored so each system sees its own outgoing edges.
func (u *Universe) AddJump(a, b *StarSystem) error {
	if a == b {
		return &ErrInvalidSystem{Name: a.Name, Reason: "jump route to itself"}
	}
	for _, j := range a.Jumps {
		if j.To == b {
			return nil // already linked
		}
	}
	a.Jumps = append(a.Jumps, &JumpRoute{From: a, To: b})
	b.Jumps = append(b.Jumps, &JumpRoute{From: b, To: a})
	return nil
}
