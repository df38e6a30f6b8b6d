package fixture_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract/fixture"
)

func TestRepository_CoversEveryStatus(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	repo := fixture.New(now)

	contracts, err := repo.ListContracts(context.Background())
	require.NoError(t, err)

	summary := contract.Summarize(contracts, now)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Active)
	assert.Equal(t, 1, summary.Expiring)
	assert.Equal(t, 1, summary.Expired)
}

func TestRepository_CreatePrepends(t *testing.T) {
	repo := fixture.New(time.Now())

	id, err := repo.CreateContract(context.Background(), contract.CreateParams{
		PropertyLabel: "CALLE FALSA 123 CABA",
		OwnerName:     "Owner",
		TenantName:    "Tenant",
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:        1000,
		Currency:      contract.CurrencyUSD,
	})
	require.NoError(t, err)

	contracts, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, contracts, 4)
	assert.Equal(t, id, contracts[0].ID)
	assert.Equal(t, contract.AdjustmentNone, contracts[0].Adjustment.Type)
}

func TestRepository_ListReturnsCopies(t *testing.T) {
	repo := fixture.New(time.Now())

	first, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	first[0].OwnerName = "changed"

	second, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].OwnerName)
}
