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

// rankCmd holds the flags for the 'rank' subcommand.
type rankCmd struct{}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "rank items by profit per hour of printing" }
func (*rankCmd) Usage() string {
	return `pst rank

  Groups all sales by item and ranks them by profit per hour of printing,
  best first. Profit is re-derived from the item's current catalog costs.
`
}

func (c *rankCmd) SetFlags(f *flag.FlagSet) {}

func (c *rankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RankingMarkdown(printsales.NewRanking(ledger)))
	return subcommands.ExitSuccess
}
