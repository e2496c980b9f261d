package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/etnz/printsales"
)

// ExpensesMarkdown renders the expense ledger followed by the per-category
// breakdown. When showCOGS is false the synthesized cost-of-goods entries
// are hidden from both.
func ExpensesMarkdown(l *printsales.Ledger, showCOGS bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")

	expenses := l.FilterExpenses(showCOGS)
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Category", "Name", "Cost"},
	}
	for _, e := range expenses {
		name := e.Name
		if e.Auto {
			name = md.Italic(name)
		}
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			string(e.Category),
			name,
			e.Cost.String(),
		})
	}
	doc.Table(table)

	doc.H2("By Category")
	breakdown := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Category", "Total"},
	}
	for _, ct := range printsales.NewExpenseBreakdown(l, showCOGS) {
		breakdown.Rows = append(breakdown.Rows, []string{ct.Category, ct.Total.String()})
	}
	doc.Table(breakdown)

	return doc.String()
}
