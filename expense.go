package printsales

import "strings"

// Category classifies an expense. Manual entries use one of the enumerated
// categories below; recording a sale synthesizes one expense per COGS
// component.
type Category string

// Manual expense categories.
const (
	CategoryMachineRepairs   Category = "Machine Repairs"
	CategoryFilamentPurchase Category = "Filament Purchase"
	CategoryWasteFilament    Category = "Waste Filament"
	CategoryPackaging        Category = "Packaging Materials"
	CategoryPowerBill        Category = "Power Bill"
	CategorySoftware         Category = "Software Subscription"
	CategoryMarketing        Category = "Marketing/Ads"
	CategoryOther            Category = "Other"
)

// Categories synthesized when a sale is recorded, one per cost component.
// The separator is an en-dash.
const (
	CategoryCOGSFilament Category = "COGS – Filament"
	CategoryCOGSPower    Category = "COGS – Power"
	CategoryCOGSOther    Category = "COGS – Other"
	CategoryCOGSDelivery Category = "COGS – Delivery"
)

const cogsPrefix = "COGS – "

// ManualCategories lists the categories offered for manual expense entry.
var ManualCategories = []Category{
	CategoryMachineRepairs,
	CategoryFilamentPurchase,
	CategoryWasteFilament,
	CategoryPackaging,
	CategoryPowerBill,
	CategorySoftware,
	CategoryMarketing,
	CategoryOther,
}

// IsCOGS reports whether the category is one of the synthesized
// cost-of-goods-sold categories.
func (c Category) IsCOGS() bool { return strings.HasPrefix(string(c), cogsPrefix) }

// Expense is one cost event. Auto entries are synthesized as a side effect
// of recording a sale and cannot be deleted directly.
type Expense struct {
	Date     Date     `json:"date"`
	Category Category `json:"category"`
	Name     string   `json:"name"` // free-form description
	Cost     Money    `json:"cost"`
	Auto     bool     `json:"auto"`
}

// ExpenseDraft carries the raw, user-entered fields of a new manual expense.
type ExpenseDraft struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Cost     string `json:"cost"`
}
