package printsales

// FilamentTotals tracks filament spending against filament consumption.
// Purchases are the manual "Filament Purchase" expenses; usage is the
// synthesized "COGS – Filament" entries. Net floors at zero: filament usage
// can never show as a negative purchase surplus.
type FilamentTotals struct {
	Purchased Money `json:"purchased"`
	Used      Money `json:"used"`
	Net       Money `json:"net"`
}

// NewFilamentTotals computes the filament totals over the full expense
// history. It always reads the unfiltered list, regardless of the COGS
// visibility toggle.
func NewFilamentTotals(l *Ledger) FilamentTotals {
	purchased := M(0, l.currency)
	used := M(0, l.currency)
	for _, e := range l.expenses {
		switch e.Category {
		case CategoryFilamentPurchase:
			purchased = purchased.Add(e.Cost)
		case CategoryCOGSFilament:
			used = used.Add(e.Cost)
		}
	}
	net := purchased.Sub(used)
	if net.IsNegative() {
		net = M(0, l.currency)
	}
	return FilamentTotals{Purchased: purchased, Used: used, Net: net}
}

// NetFilamentCost is max(0, filament purchased - filament used as COGS).
func NetFilamentCost(l *Ledger) Money { return NewFilamentTotals(l).Net }

// AccountingTotals is the whole-history profit and loss view. It is not
// range-filtered: revenue covers every sale, and COGS combines the
// synthesized non-filament COGS entries with the net filament cost so that
// filament bought in bulk is only charged once.
type AccountingTotals struct {
	Revenue     Money `json:"revenue"`
	COGS        Money `json:"cogs"`
	Other       Money `json:"other"`
	GrossProfit Money `json:"grossProfit"`
	NetProfit   Money `json:"netProfit"`
}

// NewAccountingTotals derives the accounting totals from the ledger's
// current state.
func NewAccountingTotals(l *Ledger) AccountingTotals {
	revenue := M(0, l.currency)
	for _, s := range l.sales {
		revenue = revenue.Add(s.Price)
	}

	cogsNonFilament := M(0, l.currency)
	other := M(0, l.currency)
	for _, e := range l.expenses {
		switch {
		case e.Category.IsCOGS() && e.Category != CategoryCOGSFilament:
			cogsNonFilament = cogsNonFilament.Add(e.Cost)
		case !e.Category.IsCOGS() && e.Category != CategoryFilamentPurchase:
			other = other.Add(e.Cost)
		}
	}

	cogs := cogsNonFilament.Add(NetFilamentCost(l))
	gross := revenue.Sub(cogs)
	return AccountingTotals{
		Revenue:     revenue,
		COGS:        cogs,
		Other:       other,
		GrossProfit: gross,
		NetProfit:   gross.Sub(other),
	}
}
