package printsales

import (
	"slices"
	"strings"
)

// Ledger owns the entity lists of the tracker: the item catalog, the sales,
// the expenses and the channel set. It is the single place where mutations
// happen; every report in this package is a pure function re-derived from
// the ledger's current state on each read.
//
// Invalid input never surfaces as an error: command methods return false and
// leave the ledger untouched, matching the silent no-op policy of the tool.
// The ledger is not safe for concurrent use; callers that share it across
// goroutines (the dashboard server does) must serialize access.
type Ledger struct {
	currency string // ISO 4217 code used for every amount in the ledger

	nextID   int
	items    []Item
	sales    []Sale
	expenses []Expense
	channels []string
}

// NewLedger creates an empty ledger whose amounts are in the given currency.
// The channel set starts with the designated cash channel.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		currency: currency,
		nextID:   1,
		channels: []string{CashChannel},
	}
}

// Currency returns the ISO 4217 code the ledger's amounts are in.
func (l *Ledger) Currency() string { return l.currency }

// Items returns a copy of the catalog, in insertion order.
func (l *Ledger) Items() []Item { return slices.Clone(l.items) }

// ActiveItems returns the catalog entries not flagged as removed. This is
// the list offered by the sale-entry item picker.
func (l *Ledger) ActiveItems() []Item {
	var active []Item
	for _, it := range l.items {
		if !it.Removed {
			active = append(active, it)
		}
	}
	return active
}

// Sales returns a copy of the sales list, in insertion order.
func (l *Ledger) Sales() []Sale { return slices.Clone(l.sales) }

// Expenses returns a copy of the expense list, in insertion order.
func (l *Ledger) Expenses() []Expense { return slices.Clone(l.expenses) }

// Channels returns a copy of the channel set, in insertion order.
func (l *Ledger) Channels() []string { return slices.Clone(l.channels) }

// Item returns the catalog entry with this id, or nil if unknown.
func (l *Ledger) Item(id int) *Item {
	for i := range l.items {
		if l.items[i].ID == id {
			return &l.items[i]
		}
	}
	return nil
}

// itemByName resolves an item by exact name match.
func (l *Ledger) itemByName(name string) *Item {
	for i := range l.items {
		if l.items[i].Name == name {
			return &l.items[i]
		}
	}
	return nil
}

// AddItem appends a new catalog entry built from the draft. The name is
// trimmed and must be non-empty; numeric fields are coerced. The new entry
// gets a fresh, never-reused id.
func (l *Ledger) AddItem(d ItemDraft) bool {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return false
	}
	l.items = append(l.items, Item{
		ID:           l.nextID,
		Name:         name,
		FilamentCost: ParseAmount(d.FilamentCost, l.currency),
		PowerCost:    ParseAmount(d.PowerCost, l.currency),
		OtherCosts:   ParseAmount(d.OtherCosts, l.currency),
		PrintingTime: ParseHours(d.PrintingTime),
	})
	l.nextID++
	return true
}

// EditItem updates one field of the catalog entry with this id, in place.
// Non-name fields are coerced to numbers. Historical sales keep their
// snapshots; live reports pick up the new costs on the next read.
func (l *Ledger) EditItem(id int, field ItemField, raw string) bool {
	it := l.Item(id)
	if it == nil {
		return false
	}
	switch field {
	case FieldName:
		it.Name = raw
	case FieldFilamentCost:
		it.FilamentCost = ParseAmount(raw, l.currency)
	case FieldPowerCost:
		it.PowerCost = ParseAmount(raw, l.currency)
	case FieldOtherCosts:
		it.OtherCosts = ParseAmount(raw, l.currency)
	case FieldPrintingTime:
		it.PrintingTime = ParseHours(raw)
	default:
		return false
	}
	return true
}

// ToggleRemoved flips the removed flag of the catalog entry with this id.
func (l *Ledger) ToggleRemoved(id int) bool {
	it := l.Item(id)
	if it == nil {
		return false
	}
	it.Removed = !it.Removed
	return true
}

// AddChannel inserts a channel name into the channel set. Empty names are
// rejected and duplicates (case-sensitive) are ignored.
func (l *Ledger) AddChannel(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if slices.Contains(l.channels, name) {
		return false
	}
	l.channels = append(l.channels, name)
	return true
}

// AddSale records a sale from the draft. The item is resolved by exact name
// against the catalog; if there is no match, or the price is empty, nothing
// happens. delivery is the raw delivery cost solicited by the caller; it is
// ignored for the cash channel.
//
// On success the sale is appended with the item's cost and time fields
// snapshotted, and exactly four auto expenses are appended, one per COGS
// component, dated like the sale.
func (l *Ledger) AddSale(d SaleDraft, delivery string) bool {
	it := l.itemByName(d.Item)
	if it == nil || strings.TrimSpace(d.Price) == "" {
		return false
	}

	on, err := ParseDate(d.Date)
	if err != nil {
		on = Today()
	}

	deliveryCost := M(0, l.currency)
	if d.Channel != CashChannel {
		deliveryCost = ParseAmount(delivery, l.currency)
	}

	price := ParseAmount(d.Price, l.currency)
	rate := ParsePercent(d.TaxRate)
	totalCost := it.UnitCost().Add(deliveryCost)
	taxAmount := price.MulPercent(rate)
	profit := price.Sub(totalCost).Sub(taxAmount)

	l.sales = append(l.sales, Sale{
		Date:         on,
		Item:         it.Name,
		Channel:      d.Channel,
		FilamentCost: it.FilamentCost,
		PowerCost:    it.PowerCost,
		OtherCosts:   it.OtherCosts,
		DeliveryCost: deliveryCost,
		TotalCost:    totalCost,
		Price:        price,
		TaxRate:      rate,
		TaxAmount:    taxAmount,
		Profit:       profit,
		PrintingTime: it.PrintingTime,
	})

	l.expenses = append(l.expenses,
		Expense{Date: on, Category: CategoryCOGSFilament, Name: it.Name + " (filament)", Cost: it.FilamentCost, Auto: true},
		Expense{Date: on, Category: CategoryCOGSPower, Name: it.Name + " (power)", Cost: it.PowerCost, Auto: true},
		Expense{Date: on, Category: CategoryCOGSOther, Name: it.Name + " (other)", Cost: it.OtherCosts, Auto: true},
		Expense{Date: on, Category: CategoryCOGSDelivery, Name: it.Name + " (delivery)", Cost: deliveryCost, Auto: true},
	)
	return true
}

// DeleteSale removes the sale at this position. The four auto expenses the
// sale synthesized are left in place, so COGS totals keep counting them; see
// the accounting topic for why this is kept as-is.
func (l *Ledger) DeleteSale(i int) bool {
	if i < 0 || i >= len(l.sales) {
		return false
	}
	l.sales = slices.Delete(l.sales, i, i+1)
	return true
}

// AddExpense appends a manual expense built from the draft. The description
// is trimmed and must be non-empty, and the cost field must not be empty.
func (l *Ledger) AddExpense(d ExpenseDraft) bool {
	name := strings.TrimSpace(d.Name)
	if name == "" || strings.TrimSpace(d.Cost) == "" {
		return false
	}
	on, err := ParseDate(d.Date)
	if err != nil {
		on = Today()
	}
	l.expenses = append(l.expenses, Expense{
		Date:     on,
		Category: Category(d.Category),
		Name:     name,
		Cost:     ParseAmount(d.Cost, l.currency),
	})
	return true
}

// DeleteExpense removes the manual expense at this position. Auto entries
// are protected: deleting one is a no-op.
func (l *Ledger) DeleteExpense(i int) bool {
	if i < 0 || i >= len(l.expenses) || l.expenses[i].Auto {
		return false
	}
	l.expenses = slices.Delete(l.expenses, i, i+1)
	return true
}

// FilterExpenses returns the expense list, without the synthesized COGS
// entries when showCOGS is false. This filtered view feeds the expense table
// and its exports; the net filament computation always uses the full list.
func (l *Ledger) FilterExpenses(showCOGS bool) []Expense {
	if showCOGS {
		return l.Expenses()
	}
	var kept []Expense
	for _, e := range l.expenses {
		if !e.Category.IsCOGS() {
			kept = append(kept, e)
		}
	}
	return kept
}

// SaleDates returns the distinct sale dates, ascending.
func (l *Ledger) SaleDates() []Date {
	var dates []Date
	for _, s := range l.sales {
		if !slices.Contains(dates, s.Date) {
			dates = append(dates, s.Date)
		}
	}
	slices.SortFunc(dates, Date.Compare)
	return dates
}

// SaleRange returns the range spanning all sales (the default reporting
// range). An empty ledger reports today.
func (l *Ledger) SaleRange() Range {
	dates := l.SaleDates()
	if len(dates) == 0 {
		return NewRange(Today(), Today())
	}
	return NewRange(dates[0], dates[len(dates)-1])
}

// RecentRange returns the range covering the last n distinct sale dates,
// like the "Last 7 days" and "Last 30 days" presets. An empty ledger
// reports today.
func (l *Ledger) RecentRange(n int) Range {
	dates := l.SaleDates()
	if len(dates) == 0 {
		return NewRange(Today(), Today())
	}
	return NewRange(dates[max(0, len(dates)-n)], dates[len(dates)-1])
}
