package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	rangeFlags
	what   string
	output string
	cash   bool
	cogs   bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a CSV projection of the ledger" }
func (*exportCmd) Usage() string {
	return `pst export -what <sales|items|expenses|series> [-o <file>]

  Writes one of the CSV projections to the output file, or stdout by default.
  The series projection honors the range and cash flags.

Usage Examples:
$ pst export -what series -last 30 -o series.csv
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.what, "what", "sales", "Projection to export: sales, items, expenses or series.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
	f.BoolVar(&c.cash, "cash", true, "Include cash sales in the series projection.")
	f.BoolVar(&c.cogs, "cogs", true, "Include the auto cost-of-goods entries in the expenses projection.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	switch c.what {
	case "sales":
		err = printsales.ExportSales(w, ledger)
	case "items":
		err = printsales.ExportItems(w, ledger)
	case "expenses":
		err = printsales.ExportExpenses(w, ledger, c.cogs)
	case "series":
		var rng printsales.Range
		rng, err = c.resolve(ledger)
		if err == nil {
			err = printsales.ExportSeries(w, ledger, rng, c.cash)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown projection %q\n", c.what)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", c.what, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
