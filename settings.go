package printsales

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// The only durable state of the tracker is the currency preference: a single
// value read at startup and written back on every change. Entity lists are
// deliberately non-durable.

// DefaultCurrency is used when no preference has been saved yet.
const DefaultCurrency = "GBP"

// CurrencyPath returns the file holding the currency preference.
func CurrencyPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "printsales", "currency"), nil
}

// LoadCurrency reads the saved currency preference. Any problem (no file
// yet, unreadable, unknown code) falls back to the default.
func LoadCurrency() string {
	path, err := CurrencyPath()
	if err != nil {
		return DefaultCurrency
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultCurrency
	}
	code := strings.TrimSpace(string(b))
	if money.GetCurrency(code) == nil {
		return DefaultCurrency
	}
	return code
}

// SaveCurrency persists the currency preference. The code must be a known
// ISO 4217 code.
func SaveCurrency(code string) error {
	code = strings.TrimSpace(code)
	if money.GetCurrency(code) == nil {
		return &UnknownCurrencyError{Code: code}
	}
	path, err := CurrencyPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(code+"\n"), 0o644)
}

// CurrencySymbol returns the display symbol for a currency code ("£" for
// GBP), or the code itself if unknown.
func CurrencySymbol(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return code
	}
	return cur.Grapheme
}

// UnknownCurrencyError reports an attempt to save a currency code that
// go-money does not know.
type UnknownCurrencyError struct{ Code string }

func (e *UnknownCurrencyError) Error() string {
	return "unknown currency code " + strconv.Quote(e.Code)
}
