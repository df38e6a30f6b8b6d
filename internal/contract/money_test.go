package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency contract.Currency
		want     string
	}{
		{name: "pesos grouped", amount: 550000, currency: contract.CurrencyARS, want: "$ 550.000,00"},
		{name: "pesos with cents", amount: 1234567.5, currency: contract.CurrencyARS, want: "$ 1.234.567,50"},
		{name: "dollars", amount: 900, currency: contract.CurrencyUSD, want: "USD 900"},
		{name: "dollars grouped", amount: 1250.5, currency: contract.CurrencyUSD, want: "USD 1,250.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contract.FormatMoney(tt.amount, tt.currency))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    contract.Currency
		wantErr bool
	}{
		{in: "ARS", want: contract.CurrencyARS},
		{in: "ars", want: contract.CurrencyARS},
		{in: "USD", want: contract.CurrencyUSD},
		{in: "EUR", wantErr: true},
		{in: "pesos", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := contract.ParseCurrency(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
