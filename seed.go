package printsales

// NewSeedLedger returns a ledger pre-populated with the demo dataset: three
// catalog items, three sales across the three starter channels, and a week
// of expenses including the auto entries of the first sale. It backs the
// dashboard demo mode and the package tests.
func NewSeedLedger(currency string) *Ledger {
	m := func(v float64) Money { return M(v, currency) }

	l := NewLedger(currency)
	l.channels = []string{"Website", "Ebay", CashChannel}
	l.nextID = 1000

	l.items = []Item{
		{ID: 1, Name: "T-Rex Skull Replica", FilamentCost: m(8.5), PowerCost: m(1.2), OtherCosts: m(0.5), PrintingTime: Q(10)},
		{ID: 2, Name: "Velociraptor Claw Model", FilamentCost: m(3.2), PowerCost: m(0.75), OtherCosts: m(0.4), PrintingTime: Q(4)},
		{ID: 3, Name: "Triceratops Horn Replica", FilamentCost: m(6), PowerCost: m(1.0), OtherCosts: m(0.6), PrintingTime: Q(8)},
	}

	l.sales = []Sale{
		{
			Date: NewDate(2025, 8, 1), Item: "T-Rex Skull Replica", Channel: "Website",
			FilamentCost: m(8.5), PowerCost: m(1.2), OtherCosts: m(0.5), DeliveryCost: m(5),
			TotalCost: m(15.2), Price: m(50), TaxRate: 20, TaxAmount: m(10), Profit: m(24.8),
			PrintingTime: Q(10),
		},
		{
			Date: NewDate(2025, 8, 2), Item: "Velociraptor Claw Model", Channel: CashChannel,
			FilamentCost: m(3.2), PowerCost: m(0.75), OtherCosts: m(0.4), DeliveryCost: m(0),
			TotalCost: m(4.35), Price: m(18), TaxRate: 20, TaxAmount: m(3.6), Profit: m(10.05),
			PrintingTime: Q(4),
		},
		{
			Date: NewDate(2025, 8, 3), Item: "Triceratops Horn Replica", Channel: "Ebay",
			FilamentCost: m(6), PowerCost: m(1.0), OtherCosts: m(0.6), DeliveryCost: m(4),
			TotalCost: m(11.6), Price: m(40), TaxRate: 20, TaxAmount: m(8), Profit: m(20.4),
			PrintingTime: Q(8),
		},
	}

	l.expenses = []Expense{
		{Date: NewDate(2025, 7, 28), Category: CategoryFilamentPurchase, Name: "Bulk PLA Filament", Cost: m(30)},
		{Date: NewDate(2025, 7, 29), Category: CategoryMachineRepairs, Name: "Extruder Replacement", Cost: m(15)},
		{Date: NewDate(2025, 7, 30), Category: CategoryWasteFilament, Name: "Failed Prints", Cost: m(5)},
		{Date: NewDate(2025, 8, 1), Category: CategoryCOGSFilament, Name: "T-Rex Skull Replica (filament)", Cost: m(8.5), Auto: true},
		{Date: NewDate(2025, 8, 1), Category: CategoryCOGSPower, Name: "T-Rex Skull Replica (power)", Cost: m(1.2), Auto: true},
		{Date: NewDate(2025, 8, 1), Category: CategoryCOGSOther, Name: "T-Rex Skull Replica (other)", Cost: m(0.5), Auto: true},
		{Date: NewDate(2025, 8, 1), Category: CategoryCOGSDelivery, Name: "T-Rex Skull Replica (delivery)", Cost: m(5), Auto: true},
	}

	return l
}
