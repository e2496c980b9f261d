package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// addExpenseCmd holds the flags for the 'add-expense' subcommand.
type addExpenseCmd struct {
	date     string
	category string
	name     string
	cost     string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a manual expense" }
func (*addExpenseCmd) Usage() string {
	return `pst add-expense -name <description> -cost <cost> [-category <category>] [-date <date>]

  Records a manual expense. Categories: ` + categoryList() + `.
`
}

func categoryList() string {
	names := make([]string, len(printsales.ManualCategories))
	for i, c := range printsales.ManualCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", printsales.Today().String(), "Expense date.")
	f.StringVar(&c.category, "category", string(printsales.CategoryOther), "Expense category.")
	f.StringVar(&c.name, "name", "", "Description (required).")
	f.StringVar(&c.cost, "cost", "", "Cost (required).")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.AddExpense(printsales.ExpenseDraft{
		Date:     c.date,
		Category: c.category,
		Name:     c.name,
		Cost:     c.cost,
	}) {
		fmt.Fprintln(os.Stderr, "Error: description and cost are required")
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %q (%s)\n", c.name, c.category)
	return subcommands.ExitSuccess
}
