package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales/renderer"
)

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	cogs bool
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list expenses and their per-category breakdown" }
func (*expensesCmd) Usage() string {
	return `pst expenses [-cogs=false]

  Lists the expense ledger and the per-category totals. Auto entries created
  by sales are shown in italics; pass -cogs=false to hide them.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.cogs, "cogs", true, "Show the auto cost-of-goods entries.")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ExpensesMarkdown(ledger, c.cogs))
	return subcommands.ExitSuccess
}
