package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/etnz/printsales"
)

// ItemsMarkdown renders the catalog. Removed items are struck through.
func ItemsMarkdown(l *printsales.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Catalog")

	items := l.Items()
	if len(items) == 0 {
		doc.PlainText("No items yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Filament", "Power", "Other", "Unit Cost", "Hours"},
	}
	for _, it := range items {
		name := it.Name
		if it.Removed {
			name = md.Strikethrough(name)
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(it.ID),
			name,
			it.FilamentCost.String(),
			it.PowerCost.String(),
			it.OtherCosts.String(),
			it.UnitCost().String(),
			it.PrintingTime.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SalesMarkdown renders the sales log, newest last.
func SalesMarkdown(l *printsales.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales")

	sales := l.Sales()
	if len(sales) == 0 {
		doc.PlainText("No sales yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Item", "Channel", "Price", "Tax", "Cost", "Profit"},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			s.Item,
			s.Channel,
			s.Price.String(),
			s.TaxAmount.String(),
			s.TotalCost.String(),
			s.Profit.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
