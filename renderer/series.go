package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/printsales"
)

// SeriesMarkdown renders the date-bucketed profit series.
func SeriesMarkdown(rng printsales.Range, points []printsales.SeriesPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Profit Over Time %s", rng))

	if len(points) == 0 {
		doc.PlainText("No sales in this range.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Revenue", "COGS", "Gross", "Net"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Revenue.String(),
			p.COGS.String(),
			p.Gross.SignedString(),
			p.Net.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
