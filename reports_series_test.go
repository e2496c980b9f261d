package printsales

import "testing"

func TestNewTimeSeries(t *testing.T) {
	l := widgetLedger()
	// Two sales on the same day, one the day after, one on cash.
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "10", TaxRate: "0"}, "0")
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: CashChannel, Price: "18", TaxRate: "10"}, "")

	points := NewTimeSeries(l, l.SaleRange(), true)
	if len(points) != 2 {
		t.Fatalf("got %d buckets, want 2", len(points))
	}
	if points[0].Date != day("2025-01-01") || points[1].Date != day("2025-01-02") {
		t.Fatalf("buckets not ascending: %v, %v", points[0].Date, points[1].Date)
	}

	first := points[0] // single sale: price 10, cogs 3.5
	if !first.Revenue.Equal(GBP(10)) || !first.COGS.Equal(GBP(3.5)) {
		t.Errorf("bucket 1 = %+v", first)
	}
	if !first.Gross.Equal(GBP(6.5)) || !first.Net.Equal(GBP(6.5)) {
		t.Errorf("bucket 1 gross/net = %v/%v", first.Gross, first.Net)
	}

	second := points[1] // 20 + 18 revenue; cogs 6.5 + 3.5; tax 2 + 1.8
	if !second.Revenue.Equal(GBP(38)) {
		t.Errorf("bucket 2 revenue = %v, want %v", second.Revenue, GBP(38))
	}
	if !second.COGS.Equal(GBP(10)) {
		t.Errorf("bucket 2 cogs = %v, want %v", second.COGS, GBP(10))
	}
	if !second.Gross.Equal(GBP(28)) {
		t.Errorf("bucket 2 gross = %v, want %v", second.Gross, GBP(28))
	}
	if !second.Net.Equal(GBP(24.2)) {
		t.Errorf("bucket 2 net = %v, want %v", second.Net, GBP(24.2))
	}
}

func TestTimeSeriesExcludesCash(t *testing.T) {
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: CashChannel, Price: "18", TaxRate: "10"}, "")
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	points := NewTimeSeries(l, l.SaleRange(), false)
	if len(points) != 1 {
		t.Fatalf("got %d buckets, want 1 (cash day dropped)", len(points))
	}
	if points[0].Date != day("2025-01-02") {
		t.Errorf("remaining bucket dated %v", points[0].Date)
	}
}

func TestTimeSeriesRangeBoundaries(t *testing.T) {
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "10", TaxRate: "0"}, "0")
	l.AddSale(SaleDraft{Date: "2025-01-05", Item: "Widget", Channel: "Website", Price: "10", TaxRate: "0"}, "0")

	points := NewTimeSeries(l, NewRange(day("2025-01-01"), day("2025-01-05")), true)
	if len(points) != 2 {
		t.Fatalf("boundary sales excluded: got %d buckets, want 2", len(points))
	}
}
