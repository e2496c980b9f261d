// Package cmd implements the CLI application to track print-on-demand sales.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&salesOnlyCmd{},
	&rankCmd{},
	&seriesCmd{},
	&expensesCmd{},
	&itemsCmd{},
	&salesCmd{},
	&addItemCmd{},
	&editItemCmd{},
	&removeItemCmd{},
	&addSaleCmd{},
	&deleteSaleCmd{},
	&addExpenseCmd{},
	&deleteExpenseCmd{},
	&addChannelCmd{},
	&exportCmd{},
	&currencyCmd{},
	&seedCmd{},
	&serveCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var itemsFile = flag.String("items-file", "items.csv", "Path to the catalog file (CSV)")
var salesFile = flag.String("sales-file", "sales.csv", "Path to the sales file (CSV)")
var expensesFile = flag.String("expenses-file", "expenses.csv", "Path to the expenses file (CSV)")

// loadLedger assembles the ledger from the three entity files. A file that
// does not exist yet reads as an empty list.
func loadLedger() (*printsales.Ledger, error) {
	currency := printsales.LoadCurrency()

	var items []printsales.Item
	var sales []printsales.Sale
	var expenses []printsales.Expense

	if f, err := os.Open(*itemsFile); err == nil {
		items, err = printsales.ImportItems(f, currency)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *itemsFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if f, err := os.Open(*salesFile); err == nil {
		sales, err = printsales.ImportSales(f, currency)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *salesFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if f, err := os.Open(*expensesFile); err == nil {
		expenses, err = printsales.ImportExpenses(f, currency)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *expensesFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return printsales.BuildLedger(currency, items, sales, expenses), nil
}

// saveLedger writes the ledger back to the three entity files.
func saveLedger(l *printsales.Ledger) error {
	write := func(path string, export func(f *os.File) error) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	if err := write(*itemsFile, func(f *os.File) error { return printsales.ExportItems(f, l) }); err != nil {
		return err
	}
	if err := write(*salesFile, func(f *os.File) error { return printsales.ExportSales(f, l) }); err != nil {
		return err
	}
	return write(*expensesFile, func(f *os.File) error { return printsales.ExportExpenses(f, l, true) })
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// source when the terminal renderer fails.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Println(src)
		return
	}
	fmt.Print(out)
}

// rangeFlags are the date-range flags shared by the ranged reports.
type rangeFlags struct {
	from, to string
	last     int
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "", "Start of the date range (YYYY-MM-DD). Defaults to the first sale date.")
	f.StringVar(&r.to, "to", "", "End of the date range (YYYY-MM-DD). Defaults to the last sale date.")
	f.IntVar(&r.last, "last", 0, "Report over the last n sale dates instead of an explicit range.")
}

// resolve turns the flags into a concrete range against the ledger's sales.
func (r *rangeFlags) resolve(l *printsales.Ledger) (printsales.Range, error) {
	if r.last > 0 {
		return l.RecentRange(r.last), nil
	}
	rng := l.SaleRange()
	if r.from != "" {
		from, err := printsales.ParseDate(r.from)
		if err != nil {
			return printsales.Range{}, err
		}
		rng.From = from
	}
	if r.to != "" {
		to, err := printsales.ParseDate(r.to)
		if err != nil {
			return printsales.Range{}, err
		}
		rng.To = to
	}
	return printsales.NewRange(rng.From, rng.To), nil
}
