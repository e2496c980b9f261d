package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/printsales"
)

// addSaleCmd holds the flags for the 'add-sale' subcommand.
type addSaleCmd struct {
	date     string
	item     string
	channel  string
	price    string
	tax      string
	delivery string
}

func (*addSaleCmd) Name() string     { return "add-sale" }
func (*addSaleCmd) Synopsis() string { return "record a sale" }
func (*addSaleCmd) Usage() string {
	return `pst add-sale -item <name> -price <price> [-channel <channel>] [-date <date>] [-tax <rate>] [-delivery <cost>]

  Records a sale of a catalog item. The item's costs and printing time are
  snapshotted into the sale, and one auto expense is created per cost
  component (filament, power, other, delivery). Cash sales never carry a
  delivery cost.

Usage Examples:
$ pst add-sale -item "Benchy" -price 15 -channel Website -tax 20 -delivery 3.5
`
}

func (c *addSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", printsales.Today().String(), "Sale date.")
	f.StringVar(&c.item, "item", "", "Item name, matched exactly against the catalog (required).")
	f.StringVar(&c.channel, "channel", printsales.CashChannel, "Sales channel.")
	f.StringVar(&c.price, "price", "", "Sale price (required).")
	f.StringVar(&c.tax, "tax", "", "Tax rate in percent.")
	f.StringVar(&c.delivery, "delivery", "", "Delivery cost, ignored for cash sales.")
}

func (c *addSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger.AddChannel(c.channel)
	if !ledger.AddSale(printsales.SaleDraft{
		Date:    c.date,
		Item:    c.item,
		Channel: c.channel,
		Price:   c.price,
		TaxRate: c.tax,
	}, c.delivery) {
		fmt.Fprintf(os.Stderr, "Error: unknown item %q or missing price\n", c.item)
		return subcommands.ExitUsageError
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	sales := ledger.Sales()
	s := sales[len(sales)-1]
	fmt.Printf("Recorded sale of %q on %s: profit %s\n", s.Item, s.Date, s.Profit)
	return subcommands.ExitSuccess
}
