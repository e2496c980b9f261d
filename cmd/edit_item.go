package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// editItemCmd holds the flags for the 'edit-item' subcommand.
type editItemCmd struct {
	id    int
	field string
	value string
}

func (*editItemCmd) Name() string     { return "edit-item" }
func (*editItemCmd) Synopsis() string { return "edit one field of a catalog entry" }
func (*editItemCmd) Usage() string {
	return `pst edit-item -id <id> -field <field> -value <value>

  Updates one field of an item in place. Fields: name, filamentCost,
  powerCost, otherCosts, printingTime. Past sales keep their snapshots; the
  live reports pick up the new costs.
`
}

func (c *editItemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Item id (see 'pst items').")
	f.StringVar(&c.field, "field", "", "Field to update.")
	f.StringVar(&c.value, "value", "", "New value.")
}

func (c *editItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, ok := printsales.ParseItemField(c.field)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown field %q\n", c.field)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.EditItem(c.id, field, c.value) {
		fmt.Fprintf(os.Stderr, "Error: no item with id %d\n", c.id)
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated item %d\n", c.id)
	return subcommands.ExitSuccess
}
