package printsales

import "testing"

func TestNewExpenseBreakdown(t *testing.T) {
	l := widgetLedger()
	l.AddExpense(ExpenseDraft{Category: string(CategoryFilamentPurchase), Name: "Spool", Cost: "30", Date: "2025-01-01"})
	l.AddExpense(ExpenseDraft{Category: string(CategoryMachineRepairs), Name: "Belt", Cost: "15", Date: "2025-01-01"})
	l.AddExpense(ExpenseDraft{Category: string(CategoryMachineRepairs), Name: "Nozzle", Cost: "5", Date: "2025-01-02"})
	l.AddSale(SaleDraft{Date: "2025-01-03", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	got := NewExpenseBreakdown(l, true)

	byName := make(map[string]Money)
	for _, ct := range got {
		byName[ct.Category] = ct.Total
	}
	if _, ok := byName[string(CategoryFilamentPurchase)]; ok {
		t.Error("raw Filament Purchase bucket present, want it replaced by the net bucket")
	}
	if total := byName[string(CategoryMachineRepairs)]; !total.Equal(GBP(20)) {
		t.Errorf("Machine Repairs = %v, want %v", total, GBP(20))
	}
	if total := byName[string(CategoryCOGSFilament)]; !total.Equal(GBP(2)) {
		t.Errorf("COGS – Filament = %v, want %v", total, GBP(2))
	}
	if total := byName[NetFilamentLabel]; !total.Equal(GBP(28)) {
		t.Errorf("net filament bucket = %v, want %v", total, GBP(28))
	}
}

func TestExpenseBreakdownHidesCOGS(t *testing.T) {
	l := widgetLedger()
	l.AddExpense(ExpenseDraft{Category: string(CategoryMachineRepairs), Name: "Belt", Cost: "15", Date: "2025-01-01"})
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	for _, ct := range NewExpenseBreakdown(l, false) {
		if Category(ct.Category).IsCOGS() {
			t.Errorf("COGS bucket %q present with showCOGS=false", ct.Category)
		}
	}
}

func TestExpenseBreakdownOmitsZeroNetBucket(t *testing.T) {
	l := widgetLedger()
	// Purchased 2, used 2 by the sale: net 0, no synthetic bucket.
	l.AddExpense(ExpenseDraft{Category: string(CategoryFilamentPurchase), Name: "Spool", Cost: "2", Date: "2025-01-01"})
	l.AddSale(SaleDraft{Date: "2025-01-02", Item: "Widget", Channel: "Website", Price: "20", TaxRate: "10"}, "3")

	for _, ct := range NewExpenseBreakdown(l, true) {
		if ct.Category == NetFilamentLabel {
			t.Errorf("net filament bucket present with zero net, total %v", ct.Total)
		}
	}
}
