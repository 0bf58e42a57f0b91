package queries

import (
	"context"
	"fmt"

	"github.com/meridian-sim/tradewinds/internal/application/common"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// GetPriceQuery - Query for the current price of a good at an asset
type GetPriceQuery struct {
	System    string
	Planet    string
	Commodity string
}

// GetPriceAtTimeQuery - Query for the price at an explicit simulated time
type GetPriceAtTimeQuery struct {
	System    string
	Planet    string
	Commodity string
	Time      shared.GameTime
}

// GetPriceResponse - Response with the evaluated price. Found is false on a
// lookup miss, in which case Price is zero.
type GetPriceResponse struct {
	Price int64
	Found bool
}

// GetPriceHandler - Handles both price queries
type GetPriceHandler struct {
	economy *economy.Economy
}

// NewGetPriceHandler creates a new price query handler
func NewGetPriceHandler(econ *economy.Economy) *GetPriceHandler {
	return &GetPriceHandler{economy: econ}
}

// Handle executes a price query
func (h *GetPriceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch q := request.(type) {
	case *GetPriceQuery:
		return h.price(q.System, q.Planet, q.Commodity, h.economy.Now())
	case *GetPriceAtTimeQuery:
		return h.price(q.System, q.Planet, q.Commodity, q.Time)
	default:
		return nil, fmt.Errorf("invalid request type")
	}
}

func (h *GetPriceHandler) price(system, planet, good string, t shared.GameTime) (common.Response, error) {
	p, c, err := resolvePair(h.economy, system, planet, good)
	if err != nil {
		return nil, err
	}
	price, err := h.economy.PriceAtTime(c, p, t)
	if err != nil {
		// Lookup miss is a defined neutral result, not a fault.
		return &GetPriceResponse{Price: 0, Found: false}, nil
	}
	return &GetPriceResponse{Price: price, Found: true}, nil
}
