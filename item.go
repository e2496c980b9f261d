package printsales

import "strings"

// Item is a catalog entry for a sellable print. Costs and printing time are
// per unit. Items are never hard-deleted: Removed hides them from the
// sale-entry picker while historical sales keep referring to them.
type Item struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	FilamentCost Money    `json:"filamentCost"`
	PowerCost    Money    `json:"powerCost"`
	OtherCosts   Money    `json:"otherCosts"`
	PrintingTime Quantity `json:"printingTime"` // hours per unit
	Removed      bool     `json:"removed"`
}

// UnitCost is the per-unit production cost, before delivery.
func (it Item) UnitCost() Money {
	return it.FilamentCost.Add(it.PowerCost).Add(it.OtherCosts)
}

// ItemDraft carries the raw, user-entered fields of a new catalog entry.
// Numeric fields are coerced at creation time.
type ItemDraft struct {
	Name         string `json:"name"`
	FilamentCost string `json:"filamentCost"`
	PowerCost    string `json:"powerCost"`
	OtherCosts   string `json:"otherCosts"`
	PrintingTime string `json:"printingTime"`
}

// ItemField identifies an Item field in a field-wise edit.
type ItemField string

const (
	FieldName         ItemField = "name"
	FieldFilamentCost ItemField = "filamentCost"
	FieldPowerCost    ItemField = "powerCost"
	FieldOtherCosts   ItemField = "otherCosts"
	FieldPrintingTime ItemField = "printingTime"
)

// ParseItemField parses a field name into an ItemField.
func ParseItemField(s string) (ItemField, bool) {
	switch f := ItemField(strings.TrimSpace(s)); f {
	case FieldName, FieldFilamentCost, FieldPowerCost, FieldOtherCosts, FieldPrintingTime:
		return f, true
	default:
		return "", false
	}
}
