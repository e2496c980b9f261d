package printsales

import (
	"os"
	"testing"
)

// GBP is a helper for tests to create pound money from const
func GBP(v float64) Money { return M(v, "GBP") }

// day is a helper for tests to parse a date from const
func day(s string) Date { return MustParseDate(s) }

// widgetLedger returns a GBP ledger with the single "Widget" item used
// throughout the ledger and report tests.
func widgetLedger() *Ledger {
	l := NewLedger("GBP")
	l.AddChannel("Website")
	l.AddItem(ItemDraft{
		Name:         "Widget",
		FilamentCost: "2",
		PowerCost:    "1",
		OtherCosts:   "0.5",
		PrintingTime: "2",
	})
	return l
}

// writeFile overwrites path with content, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
