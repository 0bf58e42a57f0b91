package queries

import (
	"context"
	"fmt"

	"github.com/meridian-sim/tradewinds/internal/application/common"
	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
)

// PlanetAverageQuery - Query for observed price statistics at one asset
type PlanetAverageQuery struct {
	System    string
	Planet    string
	Commodity string
}

// GalaxyAverageQuery - Query for observed price statistics across the galaxy
type GalaxyAverageQuery struct {
	Commodity string
}

// AverageResponse - Observed mean and standard deviation. Found is false when
// the good has never been observed in the queried scope.
type AverageResponse struct {
	Mean   int64
	StdDev float64
	Found  bool
}

// GetAverageHandler - Handles both average queries
type GetAverageHandler struct {
	economy *economy.Economy
}

// NewGetAverageHandler creates a new average query handler
func NewGetAverageHandler(econ *economy.Economy) *GetAverageHandler {
	return &GetAverageHandler{economy: econ}
}

// Handle executes an average query
func (h *GetAverageHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch q := request.(type) {
	case *PlanetAverageQuery:
		p, c, err := resolvePair(h.economy, q.System, q.Planet, q.Commodity)
		if err != nil {
			return nil, err
		}
		mean, std, found := h.economy.PlanetAverage(c, p)
		return &AverageResponse{Mean: mean, StdDev: std, Found: found}, nil
	case *GalaxyAverageQuery:
		c, err := h.economy.Catalog().Get(q.Commodity)
		if err != nil {
			return nil, err
		}
		mean, std, found := h.economy.GalaxyAverage(c)
		return &AverageResponse{Mean: mean, StdDev: std, Found: found}, nil
	default:
		return nil, fmt.Errorf("invalid request type")
	}
}

// resolvePair resolves document names into domain objects
func resolvePair(econ *economy.Economy, system, planet, good string) (*galaxy.Planet, *commodity.Commodity, error) {
	sys, err := econ.Universe().FindSystem(system)
	if err != nil {
		return nil, nil, err
	}
	p, err := sys.FindPlanet(planet)
	if err != nil {
		return nil, nil, err
	}
	c, err := econ.Catalog().Get(good)
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}
