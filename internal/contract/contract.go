package contract

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
)

// Currency is the ISO code of the currency a rent is agreed in.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

var unitARS = currency.MustParseISO("ARS")

// ParseCurrency accepts an ISO 4217 code and reports whether it is one the
// office works with.
func ParseCurrency(s string) (Currency, error) {
	unit, err := currency.ParseISO(s)
	if err != nil {
		return "", fmt.Errorf("parsing currency %q: %w", s, err)
	}

	switch unit {
	case unitARS:
		return CurrencyARS, nil
	case currency.USD:
		return CurrencyUSD, nil
	}

	return "", fmt.Errorf("unsupported currency %q", s)
}

// AdjustmentType names a rent-revision policy. It is stored, never computed.
type AdjustmentType string

const (
	AdjustmentIPCQuarterly AdjustmentType = "IPC_QUARTERLY"
	AdjustmentNone         AdjustmentType = "NONE"
)

// Adjustment describes how often the rent is revised.
type Adjustment struct {
	Type            AdjustmentType
	FrequencyMonths *int
}

// AdjustmentFor returns the default policy for a currency: peso contracts are
// revised by IPC every quarter, dollar contracts are not revised.
func AdjustmentFor(c Currency) *Adjustment {
	if c == CurrencyARS {
		return &Adjustment{Type: AdjustmentIPCQuarterly, FrequencyMonths: new(3)}
	}

	return &Adjustment{Type: AdjustmentNone}
}

// Contract represents one lease agreement.
type Contract struct {
	ID            string
	PropertyLabel string
	OwnerName     string
	TenantName    string
	StartDate     time.Time
	EndDate       time.Time
	Amount        float64
	Currency      Currency
	Adjustment    *Adjustment
}

// Status derives the contract status at now.
func (c *Contract) Status(now time.Time) Status {
	return StatusAt(c.EndDate, now)
}

// DaysLeft is the number of whole calendar days until the contract ends.
func (c *Contract) DaysLeft(now time.Time) int {
	return DaysUntil(c.EndDate, now)
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return d, nil
}

// FormatDate renders t as YYYY-MM-DD, or an empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}
