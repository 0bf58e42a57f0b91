package commands

import (
	"context"
	"fmt"

	"github.com/meridian-sim/tradewinds/internal/application/common"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
)

// InitializeEconomyCommand - Run the four-pass price derivation and the first
// network solve. Issued once at world load or on universe change.
type InitializeEconomyCommand struct{}

// QueueRefreshCommand - Mark the trade network dirty; the re-solve happens on
// the next tick.
type QueueRefreshCommand struct{}

// RecordObservationCommand - Fold the current price of a good at an asset
// into the player's observed statistics. Empty Commodity records every good
// offered at the asset.
type RecordObservationCommand struct {
	System    string
	Planet    string
	Commodity string
}

// ResetObservationsCommand - Zero all observation state and last purchase
// prices, as when starting a new game.
type ResetObservationsCommand struct{}

// EconomyCommandResponse - Empty acknowledgement for economy commands
type EconomyCommandResponse struct{}

// EconomyCommandHandler - Handles the economy lifecycle commands
type EconomyCommandHandler struct {
	economy *economy.Economy
}

// NewEconomyCommandHandler creates a new economy command handler
func NewEconomyCommandHandler(econ *economy.Economy) *EconomyCommandHandler {
	return &EconomyCommandHandler{economy: econ}
}

// Handle executes an economy command
func (h *EconomyCommandHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch cmd := request.(type) {
	case *InitializeEconomyCommand:
		if err := h.economy.Initialize(); err != nil {
			return nil, err
		}
	case *QueueRefreshCommand:
		h.economy.QueueRefresh()
	case *ResetObservationsCommand:
		h.economy.ResetAllObservations()
	case *RecordObservationCommand:
		if err := h.recordObservation(cmd); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid request type")
	}
	return &EconomyCommandResponse{}, nil
}

func (h *EconomyCommandHandler) recordObservation(cmd *RecordObservationCommand) error {
	sys, err := h.economy.Universe().FindSystem(cmd.System)
	if err != nil {
		return err
	}
	p, err := sys.FindPlanet(cmd.Planet)
	if err != nil {
		return err
	}
	if cmd.Commodity == "" {
		h.economy.RecordVisit(p)
		return nil
	}
	c, err := h.economy.Catalog().Get(cmd.Commodity)
	if err != nil {
		return err
	}
	h.economy.RecordObservation(p, c, h.economy.Now())
	return nil
}
