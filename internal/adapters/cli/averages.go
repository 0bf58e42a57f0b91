package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meridian-sim/tradewinds/internal/adapters/persistence"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/config"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/database"
)

// NewAveragesCommand creates the averages command with subcommands
func NewAveragesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "averages",
		Short: "Report observed price statistics",
		Long: `Report the mean and spread of prices the player has observed.

Observations are restored from the configured database before reporting,
so the figures match what a running daemon last persisted.`,
	}
	cmd.AddCommand(newGalaxyAveragesCommand())
	cmd.AddCommand(newPlanetAveragesCommand())
	return cmd
}

func newGalaxyAveragesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "galaxy",
		Short: "Print galaxy-wide observed statistics per commodity",
		RunE: func(cmd *cobra.Command, args []string) error {
			econ, cfg, err := loadEconomy()
			if err != nil {
				return err
			}
			if err := restoreObservations(cmd.Context(), econ, cfg); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMODITY\tMEAN\tSTDDEV")
			for _, c := range econ.Catalog().Priced() {
				mean, stddev, ok := econ.GalaxyAverage(c)
				if !ok {
					fmt.Fprintf(w, "%s\t-\t-\n", c.Name)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%.1f\n", c.Name, mean, stddev)
			}
			return w.Flush()
		},
	}
}

func newPlanetAveragesCommand() *cobra.Command {
	var systemName, planetName string

	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Print observed statistics for every good sold at one asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if systemName == "" || planetName == "" {
				return fmt.Errorf("--system and --planet flags are required")
			}

			econ, cfg, err := loadEconomy()
			if err != nil {
				return err
			}
			if err := restoreObservations(cmd.Context(), econ, cfg); err != nil {
				return err
			}
			sys, err := econ.Universe().FindSystem(systemName)
			if err != nil {
				return err
			}
			p, err := sys.FindPlanet(planetName)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMODITY\tMEAN\tSTDDEV")
			for _, c := range p.Commodities {
				mean, stddev, ok := econ.PlanetAverage(c, p)
				if !ok {
					fmt.Fprintf(w, "%s\t-\t-\n", c.Name)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%.1f\n", c.Name, mean, stddev)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&systemName, "system", "", "System name")
	cmd.Flags().StringVar(&planetName, "planet", "", "Planet name")
	return cmd
}

func restoreObservations(ctx context.Context, econ *economy.Economy, cfg *config.Config) error {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	repo := persistence.NewObservationRepository(db, shared.NewRealClock())
	return repo.LoadState(ctx, econ)
}
