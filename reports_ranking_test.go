package printsales

import "testing"

func TestNewRankingGroupsByItem(t *testing.T) {
	// Two widget sales, 2 and 3 hours, profits 10 and 20: one aggregated row
	// with profitPerHour 30/5 = 6.
	l := widgetLedger()
	id := l.Items()[0].ID
	// profit = price - (3.5 + delivery) - tax
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "13.5", TaxRate: "0"}, "0")
	l.EditItem(id, FieldPrintingTime, "3")
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: "Website", Price: "23.5", TaxRate: "0"}, "0")

	r := NewRanking(l)
	if len(r.Entries) != 1 {
		t.Fatalf("got %d entries, want 1 aggregated row", len(r.Entries))
	}
	e := r.Entries[0]
	if e.Item != "Widget" {
		t.Errorf("item = %q", e.Item)
	}
	if !e.Hours.Equal(Q(5)) {
		t.Errorf("hours = %v, want 5", e.Hours)
	}
	if !e.Profit.Equal(GBP(30)) {
		t.Errorf("profit = %v, want %v", e.Profit, GBP(30))
	}
	if e.Units != 2 {
		t.Errorf("units = %d, want 2", e.Units)
	}
	if !e.ProfitPerHour.Equal(GBP(6)) {
		t.Errorf("profitPerHour = %v, want %v", e.ProfitPerHour, GBP(6))
	}
}

func TestRankingSortsDescending(t *testing.T) {
	l := NewLedger("GBP")
	l.AddChannel("Website")
	l.AddItem(ItemDraft{Name: "Slow", FilamentCost: "1", PrintingTime: "10"})
	l.AddItem(ItemDraft{Name: "Fast", FilamentCost: "1", PrintingTime: "1"})
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Slow", Channel: "Website", Price: "11", TaxRate: "0"}, "0") // 10/10h = 1/h
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Fast", Channel: "Website", Price: "6", TaxRate: "0"}, "0")  // 5/1h = 5/h

	r := NewRanking(l)
	if r.Entries[0].Item != "Fast" || r.Entries[1].Item != "Slow" {
		t.Fatalf("order = [%s, %s], want best first", r.Entries[0].Item, r.Entries[1].Item)
	}
	if !r.Highest.Equal(GBP(5)) {
		t.Errorf("highest = %v, want %v", r.Highest, GBP(5))
	}
	if !r.Lowest.Equal(GBP(1)) {
		t.Errorf("lowest = %v, want %v", r.Lowest, GBP(1))
	}
}

func TestRankingTiesShareHighlight(t *testing.T) {
	// Two items at the exact same profit per hour: both boundary values are
	// that value, so value-equality highlighting marks both.
	l := NewLedger("GBP")
	l.AddChannel("Website")
	l.AddItem(ItemDraft{Name: "A", PrintingTime: "2"})
	l.AddItem(ItemDraft{Name: "B", PrintingTime: "4"})
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "A", Channel: "Website", Price: "10", TaxRate: "0"}, "0")
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "B", Channel: "Website", Price: "20", TaxRate: "0"}, "0")

	r := NewRanking(l)
	if !r.Highest.Equal(GBP(5)) || !r.Lowest.Equal(GBP(5)) {
		t.Fatalf("highest %v, lowest %v, want both 5", r.Highest, r.Lowest)
	}
	for _, e := range r.Entries {
		if !e.ProfitPerHour.Equal(r.Highest) {
			t.Errorf("%s not at the shared boundary value", e.Item)
		}
	}
}

func TestRankingZeroHours(t *testing.T) {
	l := NewLedger("GBP")
	l.AddChannel("Website")
	l.AddItem(ItemDraft{Name: "Instant"}) // no printing time
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Instant", Channel: "Website", Price: "10", TaxRate: "0"}, "0")

	r := NewRanking(l)
	if !r.Entries[0].ProfitPerHour.IsZero() {
		t.Errorf("profitPerHour with zero hours = %v, want 0", r.Entries[0].ProfitPerHour)
	}
}

func TestRankingRecomputesFromCurrentCosts(t *testing.T) {
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "0"}, "0")

	before := NewRanking(l).Entries[0].Profit // 20 - 3.5
	if !before.Equal(GBP(16.5)) {
		t.Fatalf("profit = %v, want %v", before, GBP(16.5))
	}

	l.EditItem(l.Items()[0].ID, FieldOtherCosts, "10")
	after := NewRanking(l).Entries[0].Profit // 20 - 13
	if !after.Equal(GBP(7)) {
		t.Errorf("profit after item edit = %v, want live recompute %v", after, GBP(7))
	}
}

func TestRankingOrphanedSaleKeepsHours(t *testing.T) {
	// Renaming an item orphans its sales: hours still accumulate from the
	// sale snapshot, but profit and units stop counting.
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "0"}, "0")
	l.EditItem(l.Items()[0].ID, FieldName, "Gadget")

	r := NewRanking(l)
	e := r.Entries[0]
	if e.Item != "Widget" {
		t.Fatalf("entry keyed by %q, want the sale's name", e.Item)
	}
	if !e.Hours.Equal(Q(2)) {
		t.Errorf("hours = %v, want snapshot 2", e.Hours)
	}
	if !e.Profit.IsZero() || e.Units != 0 {
		t.Errorf("orphaned sale counted: profit %v, units %d", e.Profit, e.Units)
	}
}
