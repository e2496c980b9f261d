package printsales

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// This file handles the tabular interchange format: four fixed-column CSV
// projections (sales, items, expenses, analytics series) with standard
// RFC 4180 quoting. The entity projections can also be read back, which lets
// the CLI report over previously exported files without this package growing
// a persistence layer.

var (
	salesColumns = []string{"date", "item", "channel", "price", "taxRate", "taxAmount",
		"deliveryCost", "totalCost", "profit", "printingTime"}
	itemsColumns    = []string{"id", "name", "filamentCost", "powerCost", "otherCosts", "printingTime", "removed"}
	expensesColumns = []string{"date", "category", "name", "cost", "auto"}
	seriesColumns   = []string{"date", "revenue", "cogs", "gross", "net"}
)

// ExportSales writes the sales list to w in the sales CSV projection.
func ExportSales(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesColumns); err != nil {
		return err
	}
	for _, s := range l.Sales() {
		record := []string{
			s.Date.String(), s.Item, s.Channel,
			s.Price.Amount(), s.TaxRate.Value(), s.TaxAmount.Amount(),
			s.DeliveryCost.Amount(), s.TotalCost.Amount(), s.Profit.Amount(),
			s.PrintingTime.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportItems writes the catalog to w in the items CSV projection.
func ExportItems(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(itemsColumns); err != nil {
		return err
	}
	for _, it := range l.Items() {
		record := []string{
			strconv.Itoa(it.ID), it.Name,
			it.FilamentCost.Amount(), it.PowerCost.Amount(), it.OtherCosts.Amount(),
			it.PrintingTime.String(), strconv.FormatBool(it.Removed),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportExpenses writes the expense list to w in the expenses CSV
// projection. The list is COGS-filtered the same way the expense table is.
func ExportExpenses(w io.Writer, l *Ledger, showCOGS bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(expensesColumns); err != nil {
		return err
	}
	for _, e := range l.FilterExpenses(showCOGS) {
		record := []string{
			e.Date.String(), string(e.Category), e.Name,
			e.Cost.Amount(), strconv.FormatBool(e.Auto),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSeries writes the date-bucketed analytics series to w.
func ExportSeries(w io.Writer, l *Ledger, rng Range, includeCash bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(seriesColumns); err != nil {
		return err
	}
	for _, p := range NewTimeSeries(l, rng, includeCash) {
		record := []string{
			p.Date.String(),
			p.Revenue.Amount(), p.COGS.Amount(), p.Gross.Amount(), p.Net.Amount(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// columnIndex maps a header row to column positions, requiring every
// expected column to be present.
func columnIndex(header, expected []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range expected {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

// ImportItems reads a catalog back from the items CSV projection. Amounts
// are read in the given currency.
func ImportItems(r io.Reader, currency string) ([]Item, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read items csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("items csv has no header")
	}
	idx, err := columnIndex(records[0], itemsColumns)
	if err != nil {
		return nil, fmt.Errorf("items csv: %w", err)
	}

	var items []Item
	for n, rec := range records[1:] {
		id, err := strconv.Atoi(rec[idx["id"]])
		if err != nil {
			return nil, fmt.Errorf("items csv line %d: invalid id %q: %w", n+2, rec[idx["id"]], err)
		}
		removed, _ := strconv.ParseBool(rec[idx["removed"]])
		items = append(items, Item{
			ID:           id,
			Name:         rec[idx["name"]],
			FilamentCost: ParseAmount(rec[idx["filamentCost"]], currency),
			PowerCost:    ParseAmount(rec[idx["powerCost"]], currency),
			OtherCosts:   ParseAmount(rec[idx["otherCosts"]], currency),
			PrintingTime: ParseHours(rec[idx["printingTime"]]),
			Removed:      removed,
		})
	}
	return items, nil
}

// ImportSales reads a sales list back from the sales CSV projection. The
// projection does not carry the per-component cost snapshots, only the
// totals; the components come back as zero. No report reads them: the live
// views re-derive costs from the catalog, and the stored totals are intact.
func ImportSales(r io.Reader, currency string) ([]Sale, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read sales csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sales csv has no header")
	}
	idx, err := columnIndex(records[0], salesColumns)
	if err != nil {
		return nil, fmt.Errorf("sales csv: %w", err)
	}

	var sales []Sale
	for n, rec := range records[1:] {
		on, err := ParseDate(rec[idx["date"]])
		if err != nil {
			return nil, fmt.Errorf("sales csv line %d: %w", n+2, err)
		}
		sales = append(sales, Sale{
			Date:         on,
			Item:         rec[idx["item"]],
			Channel:      rec[idx["channel"]],
			Price:        ParseAmount(rec[idx["price"]], currency),
			TaxRate:      ParsePercent(rec[idx["taxRate"]]),
			TaxAmount:    ParseAmount(rec[idx["taxAmount"]], currency),
			DeliveryCost: ParseAmount(rec[idx["deliveryCost"]], currency),
			TotalCost:    ParseAmount(rec[idx["totalCost"]], currency),
			Profit:       parseSignedAmount(rec[idx["profit"]], currency),
			PrintingTime: ParseHours(rec[idx["printingTime"]]),
			FilamentCost: M(0, currency),
			PowerCost:    M(0, currency),
			OtherCosts:   M(0, currency),
		})
	}
	return sales, nil
}

// ImportExpenses reads an expense list back from the expenses CSV projection.
func ImportExpenses(r io.Reader, currency string) ([]Expense, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read expenses csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("expenses csv has no header")
	}
	idx, err := columnIndex(records[0], expensesColumns)
	if err != nil {
		return nil, fmt.Errorf("expenses csv: %w", err)
	}

	var expenses []Expense
	for n, rec := range records[1:] {
		on, err := ParseDate(rec[idx["date"]])
		if err != nil {
			return nil, fmt.Errorf("expenses csv line %d: %w", n+2, err)
		}
		auto, _ := strconv.ParseBool(rec[idx["auto"]])
		expenses = append(expenses, Expense{
			Date:     on,
			Category: Category(rec[idx["category"]]),
			Name:     rec[idx["name"]],
			Cost:     ParseAmount(rec[idx["cost"]], currency),
			Auto:     auto,
		})
	}
	return expenses, nil
}

// BuildLedger assembles a ledger from imported entity lists. The id counter
// resumes past the highest imported id, and the channel set is rebuilt from
// the sales plus the cash channel.
func BuildLedger(currency string, items []Item, sales []Sale, expenses []Expense) *Ledger {
	l := NewLedger(currency)
	l.items = items
	l.sales = sales
	l.expenses = expenses
	for _, it := range items {
		if it.ID >= l.nextID {
			l.nextID = it.ID + 1
		}
	}
	for _, s := range sales {
		l.AddChannel(s.Channel)
	}
	return l
}
