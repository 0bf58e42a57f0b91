// Package cli implements the tradewinds command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-sim/tradewinds/internal/adapters/catalog"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/config"
)

// NewRootCommand creates the root command with all subcommands
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tradewinds",
		Short: "Inspect the trade economy",
		Long: `Query the trade-economy simulation offline.

Loads the commodity catalogue and universe documents named in the
configuration, derives every price field, and answers price and
statistics queries without a running daemon.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCommoditiesCommand())
	cmd.AddCommand(NewPriceCommand())
	cmd.AddCommand(NewAveragesCommand())

	return cmd
}

// loadEconomy builds an initialized economy from the configured documents
func loadEconomy() (*economy.Economy, *config.Config, error) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalog.LoadCatalog(cfg.Simulation.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	universe, err := catalog.LoadUniverse(cfg.Simulation.UniversePath, cat)
	if err != nil {
		return nil, nil, err
	}

	econ := economy.New(universe, cat, nil)
	if err := econ.Initialize(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize economy: %w", err)
	}
	return econ, cfg, nil
}
