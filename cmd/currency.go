package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// currencyCmd holds the flags for the 'currency' subcommand.
type currencyCmd struct {
	set string
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or change the currency preference" }
func (*currencyCmd) Usage() string {
	return `pst currency [-set <code>]

  Shows the saved currency preference, or saves a new one. The code must be a
  known ISO 4217 code like GBP, USD or EUR. Amounts are plain numbers; the
  preference only changes how they are displayed.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Currency code to save.")
}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set != "" {
		if err := printsales.SaveCurrency(c.set); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	code := printsales.LoadCurrency()
	fmt.Printf("%s (%s)\n", code, printsales.CurrencySymbol(code))
	return subcommands.ExitSuccess
}
