// Package economyapp wires the economy query surface onto the mediator.
package economyapp

import (
	"github.com/meridian-sim/tradewinds/internal/application/common"
	"github.com/meridian-sim/tradewinds/internal/application/economy/commands"
	"github.com/meridian-sim/tradewinds/internal/application/economy/queries"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
)

// RegisterHandlers registers every economy command and query on the mediator
func RegisterHandlers(m common.Mediator, econ *economy.Economy) error {
	cmdHandler := commands.NewEconomyCommandHandler(econ)
	priceHandler := queries.NewGetPriceHandler(econ)
	avgHandler := queries.NewGetAverageHandler(econ)

	if err := common.RegisterHandler[*commands.InitializeEconomyCommand](m, cmdHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*commands.QueueRefreshCommand](m, cmdHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*commands.RecordObservationCommand](m, cmdHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*commands.ResetObservationsCommand](m, cmdHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*queries.GetPriceQuery](m, priceHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*queries.GetPriceAtTimeQuery](m, priceHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*queries.PlanetAverageQuery](m, avgHandler); err != nil {
		return err
	}
	return common.RegisterHandler[*queries.GalaxyAverageQuery](m, avgHandler)
}
