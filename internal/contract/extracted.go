package contract

import "time"

// Extracted is the best-effort guess an extraction service makes from an
// uploaded document. Any field may be missing. It is never stored.
type Extracted struct {
	PropertyLabel *string
	OwnerName     *string
	TenantName    *string
	StartDate     *time.Time
	EndDate       *time.Time
	Amount        *float64
	Currency      *Currency
	Adjustment    *Adjustment
}

// CreateParams converts the candidate into a create request. This is the only
// place missing fields are defaulted: strings become empty, dates zero, the
// amount zero and the currency ARS.
func (e Extracted) CreateParams() CreateParams {
	p := CreateParams{
		PropertyLabel: deref(e.PropertyLabel),
		OwnerName:     deref(e.OwnerName),
		TenantName:    deref(e.TenantName),
		StartDate:     deref(e.StartDate),
		EndDate:       deref(e.EndDate),
		Amount:        deref(e.Amount),
		Currency:      CurrencyARS,
	}

	if e.Currency != nil && *e.Currency != "" {
		p.Currency = *e.Currency
	}

	return p
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
