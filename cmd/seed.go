package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// seedCmd holds the flags for the 'seed' subcommand.
type seedCmd struct {
	force bool
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "write demo data to the entity files" }
func (*seedCmd) Usage() string {
	return `pst seed [-f]

  Writes a small demo ledger (three items, three sales, a few expenses) to
  the entity files, for trying the reports out. Refuses to overwrite existing
  files unless -f is given.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite existing entity files.")
}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		for _, path := range []string{*itemsFile, *salesFile, *expensesFile} {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(os.Stderr, "Error: %q already exists, use -f to overwrite\n", path)
				return subcommands.ExitUsageError
			}
		}
	}

	ledger := printsales.NewSeedLedger(printsales.LoadCurrency())
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote demo data: %d items, %d sales, %d expenses\n",
		len(ledger.Items()), len(ledger.Sales()), len(ledger.Expenses()))
	return subcommands.ExitSuccess
}
