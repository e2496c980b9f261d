package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales/renderer"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the recorded sales" }
func (*salesCmd) Usage() string {
	return `pst sales

  Lists the sales log in insertion order. The position in the list is the
  index used by 'delete-sale'.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SalesMarkdown(ledger))
	return subcommands.ExitSuccess
}
