package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// addItemCmd holds the flags for the 'add-item' subcommand.
type addItemCmd struct {
	name     string
	filament string
	power    string
	other    string
	hours    string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a catalog entry" }
func (*addItemCmd) Usage() string {
	return `pst add-item -name <name> [-filament <cost>] [-power <cost>] [-other <cost>] [-hours <n>]

  Adds an item to the catalog. Costs are per unit; empty or invalid numbers
  read as zero.

Usage Examples:
$ pst add-item -name "Benchy" -filament 0.80 -power 0.15 -hours 2
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required).")
	f.StringVar(&c.filament, "filament", "", "Filament cost per unit.")
	f.StringVar(&c.power, "power", "", "Power cost per unit.")
	f.StringVar(&c.other, "other", "", "Other costs per unit.")
	f.StringVar(&c.hours, "hours", "", "Printing time per unit, in hours.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.AddItem(printsales.ItemDraft{
		Name:         c.name,
		FilamentCost: c.filament,
		PowerCost:    c.power,
		OtherCosts:   c.other,
		PrintingTime: c.hours,
	}) {
		fmt.Fprintln(os.Stderr, "Error: item name is required")
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	items := ledger.Items()
	fmt.Printf("Added item %q with id %d\n", c.name, items[len(items)-1].ID)
	return subcommands.ExitSuccess
}
