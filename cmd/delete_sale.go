package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteSaleCmd holds the flags for the 'delete-sale' subcommand.
type deleteSaleCmd struct {
	index int
}

func (*deleteSaleCmd) Name() string     { return "delete-sale" }
func (*deleteSaleCmd) Synopsis() string { return "delete a sale by its position" }
func (*deleteSaleCmd) Usage() string {
	return `pst delete-sale -i <index>

  Deletes the sale at this position in the 'pst sales' listing. The auto
  expenses the sale created are kept; see 'pst topic accounting'.
`
}

func (c *deleteSaleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Position of the sale in the listing, starting at 0.")
}

func (c *deleteSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.DeleteSale(c.index) {
		fmt.Fprintf(os.Stderr, "Error: no sale at index %d\n", c.index)
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted sale %d\n", c.index)
	return subcommands.ExitSuccess
}
