package contract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

func validParams() contract.CreateParams {
	return contract.CreateParams{
		PropertyLabel: "AV. CORRIENTES 1234 CABA",
		OwnerName:     "Ana Rodríguez",
		TenantName:    "Diego López",
		StartDate:     day(2026, 1, 1),
		EndDate:       day(2028, 1, 1),
		Amount:        550000,
		Currency:      contract.CurrencyARS,
	}
}

func TestCreateParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *contract.CreateParams)
		wantErr bool
	}{
		{name: "complete", mutate: func(*contract.CreateParams) {}},
		{name: "blank property", mutate: func(p *contract.CreateParams) { p.PropertyLabel = "  " }, wantErr: true},
		{name: "missing owner", mutate: func(p *contract.CreateParams) { p.OwnerName = "" }, wantErr: true},
		{name: "missing tenant", mutate: func(p *contract.CreateParams) { p.TenantName = "" }, wantErr: true},
		{name: "missing start", mutate: func(p *contract.CreateParams) { p.StartDate = time.Time{} }, wantErr: true},
		{name: "zero amount", mutate: func(p *contract.CreateParams) { p.Amount = 0 }, wantErr: true},
		{name: "unknown currency", mutate: func(p *contract.CreateParams) { p.Currency = "EUR" }, wantErr: true},
		{name: "end before start is allowed", mutate: func(p *contract.CreateParams) { p.EndDate = day(2025, 1, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, contract.ErrValidation)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateParams_ValidateNamesMissingFields(t *testing.T) {
	err := contract.CreateParams{Currency: contract.CurrencyUSD}.Validate()

	assert.ErrorIs(t, err, contract.ErrValidation)
	assert.Contains(t, err.Error(), "property, owner, tenant, start date, end date, amount")
}

func TestParseCurrency_Params(t *testing.T) {
	got, err := contract.ParseCurrency("usd")
	assert.NoError(t, err)
	assert.Equal(t, contract.CurrencyUSD, got)

	_, err = contract.ParseCurrency("EUR")
	assert.Error(t, err)

	_, err = contract.ParseCurrency("pesos")
	assert.Error(t, err)
}

func TestAdjustmentFor(t *testing.T) {
	ars := contract.AdjustmentFor(contract.CurrencyARS)
	assert.Equal(t, contract.AdjustmentIPCQuarterly, ars.Type)
	assert.Equal(t, 3, *ars.FrequencyMonths)

	usd := contract.AdjustmentFor(contract.CurrencyUSD)
	assert.Equal(t, contract.AdjustmentNone, usd.Type)
	assert.Nil(t, usd.FrequencyMonths)
}
