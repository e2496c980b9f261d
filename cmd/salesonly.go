package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
	"github.com/etnz/printsales/renderer"
)

// salesOnlyCmd holds the flags for the 'salesonly' subcommand.
type salesOnlyCmd struct {
	rangeFlags
	cash bool
}

func (*salesOnlyCmd) Name() string     { return "salesonly" }
func (*salesOnlyCmd) Synopsis() string { return "display the sales-only report over a date range" }
func (*salesOnlyCmd) Usage() string {
	return `pst salesonly [-from <date>] [-to <date>] [-last <n>] [-cash=false]

  Sums revenue, per-sale costs and tax over the sales in the range, ignoring
  overhead expenses, and compares all channels against excluding cash.
`
}

func (c *salesOnlyCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.BoolVar(&c.cash, "cash", true, "Include cash sales in the active view.")
}

func (c *salesOnlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	rng, err := c.resolve(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.SalesOnlyMarkdown(printsales.NewSalesOnly(ledger, rng, c.cash)))
	return subcommands.ExitSuccess
}
