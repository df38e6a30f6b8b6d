// Package extractor reads lease documents and guesses the contract they
// describe. Every field of the result is best-effort and may be missing.
package extractor

import (
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// PreviewLength is how many characters of the document text are returned
// alongside the candidate.
const PreviewLength = 800

type Result struct {
	Contract    contract.Extracted
	TextPreview string
}

// Extract reads the text of the named document and runs every field
// heuristic over it.
func Extract(filename string, data []byte) (*Result, error) {
	text, err := Text(filename, data)
	if err != nil {
		return nil, err
	}

	return FromText(text), nil
}

// FromText runs the field heuristics over already extracted text.
func FromText(text string) *Result {
	var e contract.Extracted

	if label := PropertyLabel(text); label != "" {
		e.PropertyLabel = &label
	}

	owner, tenant := Names(text)
	if owner != "" {
		e.OwnerName = &owner
	}

	if tenant != "" {
		e.TenantName = &tenant
	}

	e.StartDate, e.EndDate = Dates(text)

	amount, cur, ok := Amount(text)
	if ok {
		e.Amount = &amount
	}

	e.Currency = &cur
	e.Adjustment = contract.AdjustmentFor(cur)

	return &Result{Contract: e, TextPreview: truncate(text, PreviewLength)}
}
