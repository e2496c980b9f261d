package printsales

// CashChannel is the designated channel for cash sales. Cash sales carry no
// delivery cost and can be excluded from the "excluding cash" report variants.
const CashChannel = "Cash"

// Sale records one transaction. The four cost fields and the printing time
// are snapshots of the item at sale time: editing the catalog entry
// afterwards does not rewrite history. TotalCost, TaxAmount and Profit are
// derived once, at creation.
type Sale struct {
	Date         Date     `json:"date"`
	Item         string   `json:"item"`    // item name at sale time
	Channel      string   `json:"channel"` // channel name
	FilamentCost Money    `json:"filamentCost"`
	PowerCost    Money    `json:"powerCost"`
	OtherCosts   Money    `json:"otherCosts"`
	DeliveryCost Money    `json:"deliveryCost"`
	TotalCost    Money    `json:"totalCost"`
	Price        Money    `json:"price"`
	TaxRate      Percent  `json:"taxRate"`
	TaxAmount    Money    `json:"taxAmount"`
	Profit       Money    `json:"profit"`
	PrintingTime Quantity `json:"printingTime"`
}

// SaleDraft carries the raw, user-entered fields of a new sale. The delivery
// cost is not part of the draft: it is solicited by the presentation layer
// for non-cash channels and passed to [Ledger.AddSale] separately.
type SaleDraft struct {
	Date    string `json:"date"`
	Item    string `json:"item"`
	Channel string `json:"channel"`
	Price   string `json:"price"`
	TaxRate string `json:"taxRate"`
}
