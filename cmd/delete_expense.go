package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteExpenseCmd holds the flags for the 'delete-expense' subcommand.
type deleteExpenseCmd struct {
	index int
}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "delete a manual expense by its position" }
func (*deleteExpenseCmd) Usage() string {
	return `pst delete-expense -i <index>

  Deletes the expense at this position in the full (COGS included) expense
  listing. Auto entries created by sales cannot be deleted.
`
}

func (c *deleteExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Position of the expense in the listing, starting at 0.")
}

func (c *deleteExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.DeleteExpense(c.index) {
		fmt.Fprintf(os.Stderr, "Error: no deletable expense at index %d\n", c.index)
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted expense %d\n", c.index)
	return subcommands.ExitSuccess
}
