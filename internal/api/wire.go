package api

import (
	"fmt"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// AdjustmentJSON is the wire form of contract.Adjustment.
type AdjustmentJSON struct {
	Type            string `json:"type"`
	FrequencyMonths *int   `json:"frequencyMonths,omitempty"`
}

// ContractJSON is the wire form of contract.Contract. Dates are YYYY-MM-DD.
type ContractJSON struct {
	ID            string          `json:"id"`
	PropertyLabel string          `json:"propertyLabel"`
	OwnerName     string          `json:"ownerName"`
	TenantName    string          `json:"tenantName"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Adjustment    *AdjustmentJSON `json:"adjustment,omitempty"`
}

func NewContractJSON(c *contract.Contract) ContractJSON {
	out := ContractJSON{
		ID:            c.ID,
		PropertyLabel: c.PropertyLabel,
		OwnerName:     c.OwnerName,
		TenantName:    c.TenantName,
		StartDate:     contract.FormatDate(c.StartDate),
		EndDate:       contract.FormatDate(c.EndDate),
		Amount:        c.Amount,
		Currency:      string(c.Currency),
	}

	if c.Adjustment != nil {
		out.Adjustment = &AdjustmentJSON{
			Type:            string(c.Adjustment.Type),
			FrequencyMonths: c.Adjustment.FrequencyMonths,
		}
	}

	return out
}

// Contract converts the wire form. An unparseable end date is an error since
// status could not be derived from it.
func (j ContractJSON) Contract() (*contract.Contract, error) {
	c := &contract.Contract{
		ID:            j.ID,
		PropertyLabel: j.PropertyLabel,
		OwnerName:     j.OwnerName,
		TenantName:    j.TenantName,
		Amount:        j.Amount,
		Currency:      contract.Currency(j.Currency),
	}

	if j.StartDate != "" {
		start, err := contract.ParseDate(j.StartDate)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", j.ID, err)
		}

		c.StartDate = start
	}

	// A null end date stays zero and derives EXPIRED.
	if j.EndDate != "" {
		end, err := contract.ParseDate(j.EndDate)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", j.ID, err)
		}

		c.EndDate = end
	}

	if j.Adjustment != nil {
		c.Adjustment = &contract.Adjustment{
			Type:            contract.AdjustmentType(j.Adjustment.Type),
			FrequencyMonths: j.Adjustment.FrequencyMonths,
		}
	}

	return c, nil
}

// CreateRequest is the body of POST /contracts.
type CreateRequest struct {
	PropertyLabel string  `json:"propertyLabel"`
	OwnerName     string  `json:"ownerName"`
	TenantName    string  `json:"tenantName"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

func NewCreateRequest(p contract.CreateParams) CreateRequest {
	return CreateRequest{
		PropertyLabel: p.PropertyLabel,
		OwnerName:     p.OwnerName,
		TenantName:    p.TenantName,
		StartDate:     contract.FormatDate(p.StartDate),
		EndDate:       contract.FormatDate(p.EndDate),
		Amount:        p.Amount,
		Currency:      string(p.Currency),
	}
}

// ExtractedJSON is the wire form of contract.Extracted. Every field may be
// null or absent.
type ExtractedJSON struct {
	PropertyLabel *string         `json:"propertyLabel"`
	OwnerName     *string         `json:"ownerName"`
	TenantName    *string         `json:"tenantName"`
	StartDate     *string         `json:"startDate"`
	EndDate       *string         `json:"endDate"`
	Amount        *float64        `json:"amount"`
	Currency      *string         `json:"currency"`
	Adjustment    *AdjustmentJSON `json:"adjustment,omitempty"`
}

func NewExtractedJSON(e contract.Extracted) ExtractedJSON {
	out := ExtractedJSON{
		PropertyLabel: e.PropertyLabel,
		OwnerName:     e.OwnerName,
		TenantName:    e.TenantName,
		Amount:        e.Amount,
	}

	if e.StartDate != nil {
		out.StartDate = new(contract.FormatDate(*e.StartDate))
	}

	if e.EndDate != nil {
		out.EndDate = new(contract.FormatDate(*e.EndDate))
	}

	if e.Currency != nil {
		out.Currency = new(string(*e.Currency))
	}

	if e.Adjustment != nil {
		out.Adjustment = &AdjustmentJSON{
			Type:            string(e.Adjustment.Type),
			FrequencyMonths: e.Adjustment.FrequencyMonths,
		}
	}

	return out
}

// Extracted converts the wire form. Dates and currencies that cannot be
// parsed are dropped rather than failing the whole extraction.
func (j ExtractedJSON) Extracted() contract.Extracted {
	e := contract.Extracted{
		PropertyLabel: j.PropertyLabel,
		OwnerName:     j.OwnerName,
		TenantName:    j.TenantName,
		Amount:        j.Amount,
	}

	if j.StartDate != nil {
		if d, err := contract.ParseDate(*j.StartDate); err == nil {
			e.StartDate = &d
		}
	}

	if j.EndDate != nil {
		if d, err := contract.ParseDate(*j.EndDate); err == nil {
			e.EndDate = &d
		}
	}

	if j.Currency != nil {
		if cur, err := contract.ParseCurrency(*j.Currency); err == nil {
			e.Currency = &cur
		}
	}

	if j.Adjustment != nil {
		e.Adjustment = &contract.Adjustment{
			Type:            contract.AdjustmentType(j.Adjustment.Type),
			FrequencyMonths: j.Adjustment.FrequencyMonths,
		}
	}

	return e
}

// ExtractionJSON is the body returned by both the upload endpoint and the
// extraction service.
type ExtractionJSON struct {
	Extracted   ExtractedJSON `json:"extracted"`
	TextPreview string        `json:"textPreview,omitempty"`
}
