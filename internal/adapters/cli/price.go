package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// NewPriceCommand creates the price command with subcommands
func NewPriceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Evaluate commodity prices",
		Long: `Evaluate the derived price fields at a simulated time.

Examples:
  tradewinds price table --system Sol
  tradewinds price at --system Sol --planet Earth --good Food --time 30000000`,
	}
	cmd.AddCommand(newPriceTableCommand())
	cmd.AddCommand(newPriceAtCommand())
	return cmd
}

func newPriceTableCommand() *cobra.Command {
	var systemName string
	var at int64

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the price of every good at every asset in a system",
		RunE: func(cmd *cobra.Command, args []string) error {
			if systemName == "" {
				return fmt.Errorf("--system flag is required")
			}

			econ, _, err := loadEconomy()
			if err != nil {
				return err
			}
			sys, err := econ.Universe().FindSystem(systemName)
			if err != nil {
				return err
			}

			t := shared.GameTime(at)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLANET\tCOMMODITY\tPRICE")
			for _, p := range sys.Planets {
				for _, c := range p.Commodities {
					price, err := econ.PriceAtTime(c, p, t)
					if err != nil {
						continue // unpriced good
					}
					fmt.Fprintf(w, "%s\t%s\t%d\n", p.Name, c.Name, price)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&systemName, "system", "", "System to print prices for")
	cmd.Flags().Int64Var(&at, "time", 0, "Simulated time in raw units")
	return cmd
}

func newPriceAtCommand() *cobra.Command {
	var systemName, planetName, goodName string
	var at int64

	cmd := &cobra.Command{
		Use:   "at",
		Short: "Evaluate one (asset, good) price at a simulated time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if systemName == "" || planetName == "" || goodName == "" {
				return fmt.Errorf("--system, --planet and --good flags are required")
			}

			econ, _, err := loadEconomy()
			if err != nil {
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
			c, err := econ.Catalog().Get(goodName)
			if err != nil {
				return err
			}

			price, err := econ.PriceAtTime(c, p, shared.GameTime(at))
			if err != nil {
				return err
			}
			fmt.Printf("%d\n", price)
			return nil
		},
	}

	cmd.Flags().StringVar(&systemName, "system", "", "System name")
	cmd.Flags().StringVar(&planetName, "planet", "", "Planet name")
	cmd.Flags().StringVar(&goodName, "good", "", "Commodity name")
	cmd.Flags().Int64Var(&at, "time", 0, "Simulated time in raw units")
	return cmd
}
