// Package renderer turns the report structs into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/printsales"
)

// SummaryMarkdown renders the all-time accounting summary.
func SummaryMarkdown(l *printsales.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	totals := printsales.NewAccountingTotals(l)
	filament := printsales.NewFilamentTotals(l)

	doc.H1("Accounting Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Revenue"),
			md.Bold(totals.Revenue.String()),
		},
		Rows: [][]string{
			{"COGS", totals.COGS.String()},
			{"Other Expenses", totals.Other.String()},
			{"Gross Profit", totals.GrossProfit.SignedString()},
			{"Net Profit", totals.NetProfit.SignedString()},
		},
	})

	doc.H2("Filament")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", "Cost"},
		Rows: [][]string{
			{"Purchased", filament.Purchased.String()},
			{"Used in sales", filament.Used.String()},
			{"Net (unconsumed)", filament.Net.String()},
		},
	})

	doc.PlainText(fmt.Sprintf("%d sales, %d expense entries.", len(l.Sales()), len(l.Expenses())))

	return doc.String()
}
