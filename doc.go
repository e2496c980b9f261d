// Package printsales tracks the sales, catalog and expenses of a small
// print-on-demand business and derives its accounting views.
//
// The [Ledger] owns the entity lists and exposes the command functions that
// mutate them; everything else is a pure report re-derived from the ledger
// on each read: [NewAccountingTotals], [NewSalesOnly], [NewRanking],
// [NewTimeSeries], [NewExpenseBreakdown]. Entity state is held in memory
// only; the single durable value is the currency preference
// ([LoadCurrency], [SaveCurrency]).
package printsales
