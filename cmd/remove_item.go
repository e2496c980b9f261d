package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// removeItemCmd holds the flags for the 'remove-item' subcommand.
type removeItemCmd struct {
	id int
}

func (*removeItemCmd) Name() string     { return "remove-item" }
func (*removeItemCmd) Synopsis() string { return "toggle an item's removed flag" }
func (*removeItemCmd) Usage() string {
	return `pst remove-item -id <id>

  Flips the removed flag of a catalog entry. Removed items are hidden from
  the sale-entry picker but keep pricing historical sales; running the
  command again restores them.
`
}

func (c *removeItemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Item id (see 'pst items').")
}

func (c *removeItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.ToggleRemoved(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no item with id %d\n", c.id)
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	it := ledger.Item(c.id)
	if it.Removed {
		fmt.Printf("Removed item %q from the picker\n", it.Name)
	} else {
		fmt.Printf("Restored item %q\n", it.Name)
	}
	return subcommands.ExitSuccess
}
