package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCommoditiesCommand creates the commodities command
func NewCommoditiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commodities",
		Short: "List the commodity catalogue",
	}
	cmd.AddCommand(newCommoditiesListCommand())
	return cmd
}

func newCommoditiesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all catalogued commodities",
		Long: `List every commodity in the catalogue with its reference price.

Goods with a zero reference price are catalogued but take no part in the
economy.

Examples:
  tradewinds commodities list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			econ, _, err := loadEconomy()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tREF PRICE\tPERIOD\tPRICED")
			for _, c := range econ.Catalog().All() {
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%v\n", c.Name, c.RefPrice, c.Period, c.Priced())
			}
			return w.Flush()
		},
	}
}
