package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation marks errors caught before any request is made.
var ErrValidation = errors.New("validation failed")

// CreateParams is the payload of a create-contract request.
type CreateParams struct {
	PropertyLabel string
	OwnerName     string
	TenantName    string
	StartDate     time.Time
	EndDate       time.Time
	Amount        float64
	Currency      Currency
}

// Validate checks that every required field is present. The end date is not
// compared with the start date; the backend owns that rule.
func (p CreateParams) Validate() error {
	var missing []string

	if strings.TrimSpace(p.PropertyLabel) == "" {
		missing = append(missing, "property")
	}

	if strings.TrimSpace(p.OwnerName) == "" {
		missing = append(missing, "owner")
	}

	if strings.TrimSpace(p.TenantName) == "" {
		missing = append(missing, "tenant")
	}

	if p.StartDate.IsZero() {
		missing = append(missing, "start date")
	}

	if p.EndDate.IsZero() {
		missing = append(missing, "end date")
	}

	if p.Amount <= 0 {
		missing = append(missing, "amount")
	}

	if p.Currency != CurrencyARS && p.Currency != CurrencyUSD {
		missing = append(missing, "currency")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: complete all fields (missing %s)", ErrValidation, strings.Join(missing, ", "))
	}

	return nil
}
