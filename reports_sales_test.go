package printsales

import "testing"

// salesFixture records three widget sales on consecutive days, the middle
// one on the cash channel.
func salesFixture(t *testing.T) *Ledger {
	t.Helper()
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: CashChannel, Price: "18", TaxRate: "10"}, "")
	l.AddSale(SaleDraft{Date: "2025-01-03", Item: "Widget", Channel: "Website", Price: "40", TaxRate: "10"}, "4")
	return l
}

func TestNewSalesOnly(t *testing.T) {
	l := salesFixture(t)
	rng := NewRange(day("2025-01-01"), day("2025-01-03"))
	got := NewSalesOnly(l, rng, true)

	// All: revenue 78; cogs = (3.5+3) + 3.5 + (3.5+4) = 17.5; tax 7.8.
	if !got.All.Revenue.Equal(GBP(78)) {
		t.Errorf("all revenue = %v, want %v", got.All.Revenue, GBP(78))
	}
	if !got.All.COGS.Equal(GBP(17.5)) {
		t.Errorf("all cogs = %v, want %v", got.All.COGS, GBP(17.5))
	}
	if !got.All.Tax.Equal(GBP(7.8)) {
		t.Errorf("all tax = %v, want %v", got.All.Tax, GBP(7.8))
	}

	// Excluding cash drops the 2025-01-02 sale.
	if !got.ExclCash.Revenue.Equal(GBP(60)) {
		t.Errorf("exclCash revenue = %v, want %v", got.ExclCash.Revenue, GBP(60))
	}
	if !got.ExclCash.COGS.Equal(GBP(14)) {
		t.Errorf("exclCash cogs = %v, want %v", got.ExclCash.COGS, GBP(14))
	}

	if !got.Active().Revenue.Equal(got.All.Revenue) {
		t.Error("active view with cash included is not the all-channels variant")
	}
	noCash := NewSalesOnly(l, rng, false)
	if !noCash.Active().Revenue.Equal(noCash.ExclCash.Revenue) {
		t.Error("active view with cash excluded is not the exclCash variant")
	}
}

func TestSalesOnlyRangeBoundariesInclusive(t *testing.T) {
	l := salesFixture(t)

	testCases := []struct {
		name        string
		from, to    string
		wantRevenue Money
	}{
		{name: "start boundary included", from: "2025-01-01", to: "2025-01-01", wantRevenue: GBP(20)},
		{name: "end boundary included", from: "2025-01-03", to: "2025-01-03", wantRevenue: GBP(40)},
		{name: "full range", from: "2025-01-01", to: "2025-01-03", wantRevenue: GBP(78)},
		{name: "outside range", from: "2024-01-01", to: "2024-12-31", wantRevenue: GBP(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewSalesOnly(l, NewRange(day(tc.from), day(tc.to)), true)
			if !got.All.Revenue.Equal(tc.wantRevenue) {
				t.Errorf("revenue = %v, want %v", got.All.Revenue, tc.wantRevenue)
			}
		})
	}
}

func TestSalesOnlyUsesCurrentItemCosts(t *testing.T) {
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "0"}, "3")

	rng := l.SaleRange()
	before := NewSalesOnly(l, rng, true)
	if !before.All.COGS.Equal(GBP(6.5)) {
		t.Fatalf("cogs = %v, want %v", before.All.COGS, GBP(6.5))
	}

	// Repricing the item reprices the sales-only view, unlike the sale's
	// stored snapshot fields.
	l.EditItem(l.Items()[0].ID, FieldFilamentCost, "10")
	after := NewSalesOnly(l, rng, true)
	if !after.All.COGS.Equal(GBP(14.5)) {
		t.Errorf("cogs after item edit = %v, want %v", after.All.COGS, GBP(14.5))
	}
}

func TestSalesOnlyComparison(t *testing.T) {
	l := salesFixture(t)
	rows := NewSalesOnly(l, l.SaleRange(), true).Comparison()

	if len(rows) != 4 {
		t.Fatalf("got %d comparison rows, want 4", len(rows))
	}
	wantLabels := []string{"Revenue", "COGS", "Gross Profit", "Net (after tax)"}
	for i, want := range wantLabels {
		if rows[i].Label != want {
			t.Errorf("row[%d] label = %q, want %q", i, rows[i].Label, want)
		}
	}
	// Gross = revenue - cogs on both variants.
	if !rows[2].All.Equal(GBP(60.5)) {
		t.Errorf("all gross = %v, want %v", rows[2].All, GBP(60.5))
	}
	if !rows[2].ExclCash.Equal(GBP(46)) {
		t.Errorf("exclCash gross = %v, want %v", rows[2].ExclCash, GBP(46))
	}
}
