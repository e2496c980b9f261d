package printsales

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestExportSales(t *testing.T) {
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	var buf bytes.Buffer
	if err := ExportSales(&buf, l); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "date,item,channel,price,taxRate,taxAmount,deliveryCost,totalCost,profit,printingTime" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2025-01-01,Widget,Website,20,10,2,3,6.5,11.5,2" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportQuoting(t *testing.T) {
	// Values containing commas or quotes are wrapped in quotes with embedded
	// quotes doubled, per standard CSV quoting.
	l := NewLedger("GBP")
	l.AddItem(ItemDraft{Name: `Bust, 6" tall`, FilamentCost: "2"})

	var buf bytes.Buffer
	if err := ExportItems(&buf, l); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"Bust, 6"" tall"`) {
		t.Errorf("quoting wrong: %q", buf.String())
	}
}

func TestExportExpensesFiltered(t *testing.T) {
	l := widgetLedger()
	l.AddExpense(ExpenseDraft{Category: string(CategoryMachineRepairs), Name: "Belt", Cost: "15", Date: "2025-01-01"})
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	var buf bytes.Buffer
	if err := ExportExpenses(&buf, l, false); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "COGS") {
		t.Errorf("COGS rows exported with showCOGS=false:\n%s", buf.String())
	}

	buf.Reset()
	if err := ExportExpenses(&buf, l, true); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 6 { // header + 1 manual + 4 auto
		t.Errorf("got %d lines, want 6", got)
	}
}

func TestExportSeries(t *testing.T) {
	l := widgetLedger()
	l.AddSale(SaleDraft{Date: "2025-01-01", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	var buf bytes.Buffer
	if err := ExportSeries(&buf, l, l.SaleRange(), true); err != nil {
		t.Fatal(err)
	}
	want := "date,revenue,cogs,gross,net\n2025-01-01,20,6.5,13.5,11.5\n"
	if buf.String() != want {
		t.Errorf("series export = %q, want %q", buf.String(), want)
	}
}

func TestImportRoundTrip(t *testing.T) {
	l := NewSeedLedger("GBP")

	var items, sales, expenses bytes.Buffer
	if err := ExportItems(&items, l); err != nil {
		t.Fatal(err)
	}
	if err := ExportSales(&sales, l); err != nil {
		t.Fatal(err)
	}
	if err := ExportExpenses(&expenses, l, true); err != nil {
		t.Fatal(err)
	}

	gotItems, err := ImportItems(&items, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	gotSales, err := ImportSales(&sales, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	gotExpenses, err := ImportExpenses(&expenses, "GBP")
	if err != nil {
		t.Fatal(err)
	}

	rebuilt := BuildLedger("GBP", gotItems, gotSales, gotExpenses)

	if got, want := len(rebuilt.Items()), len(l.Items()); got != want {
		t.Fatalf("items = %d, want %d", got, want)
	}
	if got, want := len(rebuilt.Sales()), len(l.Sales()); got != want {
		t.Fatalf("sales = %d, want %d", got, want)
	}
	if got, want := len(rebuilt.Expenses()), len(l.Expenses()); got != want {
		t.Fatalf("expenses = %d, want %d", got, want)
	}

	// The aggregates that only depend on exported fields agree.
	a, b := NewAccountingTotals(l), NewAccountingTotals(rebuilt)
	if !a.Revenue.Equal(b.Revenue) || !a.COGS.Equal(b.COGS) || !a.NetProfit.Equal(b.NetProfit) {
		t.Errorf("accounting totals differ after round trip: %+v vs %+v", a, b)
	}

	// Channels are rebuilt from the sales plus the cash channel.
	for _, want := range []string{"Website", "Ebay", CashChannel} {
		if !slices.Contains(rebuilt.Channels(), want) {
			t.Errorf("channel %q missing after round trip", want)
		}
	}

	// The id counter resumes past the highest imported id.
	rebuilt.AddItem(ItemDraft{Name: "New"})
	newItems := rebuilt.Items()
	if id := newItems[len(newItems)-1].ID; id <= 3 {
		t.Errorf("new id %d collides with imported ids", id)
	}
}

func TestImportSalesRejectsBadHeader(t *testing.T) {
	_, err := ImportSales(strings.NewReader("date,item\n2025-01-01,Widget\n"), "GBP")
	if err == nil {
		t.Error("ImportSales() accepted a truncated header")
	}
}
