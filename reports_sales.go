package printsales

// SalesTotals sums revenue, cost of goods and tax over a set of sales.
// Unlike the sales' stored fields, the COGS here is re-derived from the
// item's current catalog costs plus the sale's delivery cost, so editing an
// item reprices this view; the tax is re-derived from price and rate.
type SalesTotals struct {
	Revenue Money `json:"revenue"`
	COGS    Money `json:"cogs"`
	Tax     Money `json:"tax"`
}

// GrossProfit is revenue minus cost of goods.
func (t SalesTotals) GrossProfit() Money { return t.Revenue.Sub(t.COGS) }

// NetAfterTax is revenue minus cost of goods minus tax.
func (t SalesTotals) NetAfterTax() Money { return t.Revenue.Sub(t.COGS).Sub(t.Tax) }

// SalesOnly is the sales-only report over a date range: overhead expenses
// are ignored, only per-sale costs and tax count. It is computed twice, over
// all channels and excluding the cash channel, with an active view selected
// by the include-cash toggle.
type SalesOnly struct {
	Range        Range       `json:"range"`
	CashIncluded bool        `json:"cashIncluded"`
	All          SalesTotals `json:"all"`
	ExclCash     SalesTotals `json:"exclCash"`
}

// Active returns the variant selected by the include-cash toggle.
func (r SalesOnly) Active() SalesTotals {
	if r.CashIncluded {
		return r.All
	}
	return r.ExclCash
}

// NewSalesOnly computes the sales-only report for the sales dated within rng
// (boundaries included).
func NewSalesOnly(l *Ledger, rng Range, includeCash bool) SalesOnly {
	report := SalesOnly{
		Range:        rng,
		CashIncluded: includeCash,
		All:          zeroSalesTotals(l.currency),
		ExclCash:     zeroSalesTotals(l.currency),
	}
	for _, s := range l.sales {
		if !rng.Contains(s.Date) {
			continue
		}
		report.All = report.All.add(l.liveTotals(s))
		if s.Channel != CashChannel {
			report.ExclCash = report.ExclCash.add(l.liveTotals(s))
		}
	}
	return report
}

func zeroSalesTotals(currency string) SalesTotals {
	zero := M(0, currency)
	return SalesTotals{Revenue: zero, COGS: zero, Tax: zero}
}

func (t SalesTotals) add(u SalesTotals) SalesTotals {
	return SalesTotals{
		Revenue: t.Revenue.Add(u.Revenue),
		COGS:    t.COGS.Add(u.COGS),
		Tax:     t.Tax.Add(u.Tax),
	}
}

// liveTotals prices one sale with the item's current catalog costs. A sale
// whose item is gone from the catalog (renamed) keeps its revenue and
// delivery cost but loses its unit costs.
func (l *Ledger) liveTotals(s Sale) SalesTotals {
	unit := M(0, l.currency)
	if it := l.itemByName(s.Item); it != nil {
		unit = it.UnitCost()
	}
	return SalesTotals{
		Revenue: s.Price,
		COGS:    unit.Add(s.DeliveryCost),
		Tax:     s.Price.MulPercent(s.TaxRate),
	}
}

// ComparisonRow is one line of the all-channels vs excluding-cash
// comparison chart.
type ComparisonRow struct {
	Label    string `json:"label"`
	All      Money  `json:"all"`
	ExclCash Money  `json:"exclCash"`
}

// Comparison derives the four comparison rows from the report.
func (r SalesOnly) Comparison() []ComparisonRow {
	return []ComparisonRow{
		{Label: "Revenue", All: r.All.Revenue, ExclCash: r.ExclCash.Revenue},
		{Label: "COGS", All: r.All.COGS, ExclCash: r.ExclCash.COGS},
		{Label: "Gross Profit", All: r.All.GrossProfit(), ExclCash: r.ExclCash.GrossProfit()},
		{Label: "Net (after tax)", All: r.All.NetAfterTax(), ExclCash: r.ExclCash.NetAfterTax()},
	}
}
