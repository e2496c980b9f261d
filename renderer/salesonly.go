package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/printsales"
)

// SalesOnlyMarkdown renders the sales-only report: the active variant in
// full, then the all-channels vs excluding-cash comparison.
func SalesOnlyMarkdown(r printsales.SalesOnly) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales Only %s", r.Range))
	if !r.CashIncluded {
		doc.PlainText("Cash sales excluded.")
	}

	active := r.Active()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Revenue"),
			md.Bold(active.Revenue.String()),
		},
		Rows: [][]string{
			{"COGS", active.COGS.String()},
			{"Gross Profit", active.GrossProfit().SignedString()},
			{"Tax", active.Tax.String()},
			{"Net (after tax)", active.NetAfterTax().SignedString()},
		},
	})

	doc.H2("All Channels vs Excluding Cash")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", "All", "Excl. Cash"},
	}
	for _, row := range r.Comparison() {
		table.Rows = append(table.Rows, []string{
			row.Label,
			row.All.SignedString(),
			row.ExclCash.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
