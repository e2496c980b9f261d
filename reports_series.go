package printsales

import "slices"

// SeriesPoint is one date bucket of the performance-over-time series.
type SeriesPoint struct {
	Date    Date  `json:"date"`
	Revenue Money `json:"revenue"`
	COGS    Money `json:"cogs"`
	Gross   Money `json:"gross"`
	Net     Money `json:"net"`
}

// NewTimeSeries buckets the sales dated within rng by date and sums revenue,
// cost of goods (current item costs plus delivery), gross and net (after
// tax) per bucket. Cash-channel sales are dropped when includeCash is false.
// Buckets come out ascending by date; dates without sales produce no bucket.
func NewTimeSeries(l *Ledger, rng Range, includeCash bool) []SeriesPoint {
	var order []Date
	buckets := make(map[Date]*SeriesPoint)

	for _, s := range l.sales {
		if !rng.Contains(s.Date) || (!includeCash && s.Channel == CashChannel) {
			continue
		}
		unit := M(0, l.currency)
		if it := l.itemByName(s.Item); it != nil {
			unit = it.UnitCost()
		}
		cogs := unit.Add(s.DeliveryCost)
		gross := s.Price.Sub(cogs)
		net := gross.Sub(s.Price.MulPercent(s.TaxRate))

		p, ok := buckets[s.Date]
		if !ok {
			zero := M(0, l.currency)
			p = &SeriesPoint{Date: s.Date, Revenue: zero, COGS: zero, Gross: zero, Net: zero}
			buckets[s.Date] = p
			order = append(order, s.Date)
		}
		p.Revenue = p.Revenue.Add(s.Price)
		p.COGS = p.COGS.Add(cogs)
		p.Gross = p.Gross.Add(gross)
		p.Net = p.Net.Add(net)
	}

	slices.SortFunc(order, Date.Compare)
	points := make([]SeriesPoint, 0, len(order))
	for _, d := range order {
		points = append(points, *buckets[d])
	}
	return points
}
