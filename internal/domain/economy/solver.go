package economy

import (
	"errors"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// Solver runs the nodal analysis over the jump graph: one unknown per system,
// one solve per priced good. It owns the admittance factorization and the
// per-system potential vectors; everything else only reads potentials.
type Solver struct {
	universe  *galaxy.Universe
	priced    []*commodity.Commodity
	intensity IntensityFunc

	// admittance is the Cholesky factorization of the current matrix.
	// Replaced as a whole on rebuild, nil until the first successful build.
	admittance *mat.Cholesky

	// queued coalesces change notifications into one refresh per tick.
	queued int
}

// matrixEntry is the build-time triplet scratch; discarded after compression
// into the symmetric matrix.
type matrixEntry struct {
	row, col int
	value    float64
}

// NewSolver creates a solver over the universe for the given priced goods.
// A nil intensity function defaults to ZeroIntensity.
func NewSolver(u *galaxy.Universe, priced []*commodity.Commodity, intensity IntensityFunc) *Solver {
	if intensity == nil {
		intensity = ZeroIntensity
	}
	return &Solver{universe: u, priced: priced, intensity: intensity}
}

// QueueRefresh notes that topology or an edge-affecting attribute changed.
// Bursts of changes collapse into a single re-solve on the next tick.
func (s *Solver) QueueRefresh() {
	s.queued++
}

// QueuedUpdates returns the pending change count
func (s *Solver) QueuedUpdates() int {
	return s.queued
}

// ExecQueued refreshes the network once if any updates are queued. Called
// once per simulated tick.
func (s *Solver) ExecQueued(elapsed shared.GameTime) error {
	if s.queued == 0 {
		return nil
	}
	return s.Refresh(elapsed)
}

// Refresh rebuilds the admittance matrix from live attributes and re-solves
// every potential vector. A failed build or solve is reported and the
// previous results are kept; the simulation continues undisturbed.
func (s *Solver) Refresh(elapsed shared.GameTime) error {
	chol, err := s.rebuild()
	if err != nil {
		log.Printf("economy: failed to build admittance matrix: %v", err)
		return err
	}
	s.admittance = chol
	s.resolve(elapsed)
	s.queued = 0
	return nil
}

// rebuild assembles the symmetric admittance matrix. Off-diagonal (i,j) is
// the negative conductance of the jump route; the diagonal accumulates the
// row's conductance magnitude plus the self conductance, which makes the
// matrix strictly diagonally dominant and therefore positive definite even
// when a system has no routes at all.
func (s *Solver) rebuild() (*mat.Cholesky, error) {
	n := s.universe.Len()
	if n == 0 {
		return nil, errors.New("no systems in universe")
	}

	scratch := make([]matrixEntry, 0, 4*n)
	for _, sys := range s.universe.Systems() {
		rsum := 0.
		for _, jump := range sys.Jumps {
			g := 1. / jumpResistance(sys, jump.To, s.universe.Standings)
			rsum += g
			// Both halves entered explicitly; the construction is
			// symmetric rather than symmetrized by the solver.
			scratch = append(scratch,
				matrixEntry{sys.Index, jump.To.Index, -g},
				matrixEntry{jump.To.Index, sys.Index, -g},
			)
		}
		scratch = append(scratch, matrixEntry{sys.Index, sys.Index, rsum + 1./selfResistance})
	}

	m := mat.NewSymDense(n, nil)
	for _, e := range scratch {
		i, j := e.row, e.col
		if i > j {
			i, j = j, i
		}
		m.SetSym(i, j, e.value)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(m); !ok {
		return nil, errors.New("admittance matrix is not positive definite")
	}
	return &chol, nil
}

// resolve computes the potential vector of every priced good and installs the
// results. A good whose solve fails keeps its previous potentials.
func (s *Solver) resolve(elapsed shared.GameTime) {
	if s.admittance == nil {
		return
	}

	n := s.universe.Len()
	systems := s.universe.Systems()

	// Full replacement vectors, seeded with the current values so a failed
	// solve degrades to stale data instead of a torn write.
	next := make([][]float64, n)
	for i, sys := range systems {
		next[i] = make([]float64, len(s.priced))
		for gi := range s.priced {
			next[i][gi] = sys.Potential(gi)
		}
	}

	b := mat.NewVecDense(n, nil)
	x := mat.NewVecDense(n, nil)
	for gi, good := range s.priced {
		for i, sys := range systems {
			b.SetVec(i, s.intensity(sys, good, elapsed))
		}
		if err := s.admittance.SolveVecTo(x, b); err != nil {
			log.Printf("economy: failed to solve network for %q: %v", good.Name, err)
			continue
		}
		// Offset so a zero-intensity solve lands on the neutral
		// potential 1.0.
		for i := 0; i < n; i++ {
			next[i][gi] = x.AtVec(i) + 1.
		}
	}

	for i, sys := range systems {
		sys.SetPotentials(next[i])
	}
}
