package printsales

import "slices"

// ItemStats accumulates the production efficiency of one catalog item across
// all its sales. Hours come from the sales' snapshotted printing time;
// profit is recomputed live from the item's current catalog costs, each
// sale's delivery cost and tax rate, not from the sales' stored profit.
type ItemStats struct {
	Item          string   `json:"item"`
	Hours         Quantity `json:"hours"`
	Profit        Money    `json:"profit"`
	Units         int      `json:"units"`
	ProfitPerHour Money    `json:"profitPerHour"`
}

// Ranking orders items by profit per printing hour, best first. Highest and
// Lowest hold the boundary values for highlighting; entries tied at the
// exact same value share the highlight.
type Ranking struct {
	Entries []ItemStats `json:"entries"`
	Highest Money       `json:"highest"`
	Lowest  Money       `json:"lowest"`
}

// NewRanking groups every sale (no range filter) by item name and ranks the
// items by profit per hour. Items with zero recorded hours rank at zero
// rather than dividing by zero.
func NewRanking(l *Ledger) Ranking {
	var order []string
	stats := make(map[string]*ItemStats)

	for _, s := range l.sales {
		st, ok := stats[s.Item]
		if !ok {
			st = &ItemStats{Item: s.Item, Profit: M(0, l.currency)}
			stats[s.Item] = st
			order = append(order, s.Item)
		}
		// Hours accumulate even when the catalog entry is gone; profit and
		// units only count for resolvable items, like the source data.
		st.Hours = st.Hours.Add(s.PrintingTime)
		it := l.itemByName(s.Item)
		if it == nil {
			continue
		}
		totalCost := it.UnitCost().Add(s.DeliveryCost)
		taxAmount := s.Price.MulPercent(s.TaxRate)
		st.Profit = st.Profit.Add(s.Price.Sub(totalCost).Sub(taxAmount))
		st.Units++
	}

	r := Ranking{Highest: M(0, l.currency), Lowest: M(0, l.currency)}
	for _, name := range order {
		st := stats[name]
		if st.Hours.IsZero() {
			st.ProfitPerHour = M(0, l.currency)
		} else {
			st.ProfitPerHour = st.Profit.Div(st.Hours)
		}
		r.Entries = append(r.Entries, *st)
	}
	slices.SortStableFunc(r.Entries, func(a, b ItemStats) int {
		return b.ProfitPerHour.Cmp(a.ProfitPerHour)
	})
	if len(r.Entries) > 0 {
		r.Highest = r.Entries[0].ProfitPerHour
		r.Lowest = r.Entries[len(r.Entries)-1].ProfitPerHour
	}
	return r
}
