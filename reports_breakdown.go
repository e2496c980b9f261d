package printsales

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
}

// NetFilamentLabel is the synthetic breakdown bucket that replaces the raw
// filament purchases.
const NetFilamentLabel = "Filament Purchase (net)"

// NewExpenseBreakdown sums expenses per category for the breakdown chart.
// Raw "Filament Purchase" entries are excluded; instead, when the net
// filament cost is positive, a synthetic "Filament Purchase (net)" bucket is
// appended, so bulk filament only shows up for the part not yet consumed by
// sales. When showCOGS is false the synthesized COGS categories are left out.
// Buckets keep first-seen order.
func NewExpenseBreakdown(l *Ledger, showCOGS bool) []CategoryTotal {
	var order []Category
	totals := make(map[Category]Money)

	for _, e := range l.expenses {
		if e.Category == CategoryFilamentPurchase {
			continue
		}
		if !showCOGS && e.Category.IsCOGS() {
			continue
		}
		t, ok := totals[e.Category]
		if !ok {
			t = M(0, l.currency)
			order = append(order, e.Category)
		}
		totals[e.Category] = t.Add(e.Cost)
	}

	breakdown := make([]CategoryTotal, 0, len(order)+1)
	for _, c := range order {
		breakdown = append(breakdown, CategoryTotal{Category: string(c), Total: totals[c]})
	}
	if net := NetFilamentCost(l); net.IsPositive() {
		breakdown = append(breakdown, CategoryTotal{Category: NetFilamentLabel, Total: net})
	}
	return breakdown
}
