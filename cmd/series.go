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

// seriesCmd holds the flags for the 'series' subcommand.
type seriesCmd struct {
	rangeFlags
	cash bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the profit-over-time series" }
func (*seriesCmd) Usage() string {
	return `pst series [-from <date>] [-to <date>] [-last <n>] [-cash=false]

  Buckets the sales in the range by date and shows revenue, COGS, gross and
  net profit per day with at least one sale.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.BoolVar(&c.cash, "cash", true, "Include cash sales.")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SeriesMarkdown(rng, printsales.NewTimeSeries(ledger, rng, c.cash)))
	return subcommands.ExitSuccess
}
