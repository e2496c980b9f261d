package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/etnz/printsales"
)

// RankingMarkdown renders the profit-per-hour ranking. The best and worst
// values are highlighted; on a tie every entry at the boundary value is.
func RankingMarkdown(r printsales.Ranking) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Profit per Hour of Printing")

	if len(r.Entries) == 0 {
		doc.PlainText("No sales recorded yet.")
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
		Header: []string{"Item", "Units", "Hours", "Profit", "Profit / Hour"},
	}
	for _, e := range r.Entries {
		perHour := e.ProfitPerHour.SignedString()
		switch {
		case e.ProfitPerHour.Equal(r.Highest):
			perHour = md.Bold(perHour + " ▲")
		case e.ProfitPerHour.Equal(r.Lowest):
			perHour = perHour + " ▼"
		}
		table.Rows = append(table.Rows, []string{
			e.Item,
			strconv.Itoa(e.Units),
			e.Hours.String(),
			e.Profit.SignedString(),
			perHour,
		})
	}
	doc.Table(table)

	return doc.String()
}
