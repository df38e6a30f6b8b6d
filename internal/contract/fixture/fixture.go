// Package fixture provides an in-memory contract source seeded with a fixed
// demonstration dataset, so the client can be exercised without a backend.
package fixture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

type Repository struct {
	mu        sync.Mutex
	contracts []*contract.Contract
	nextID    int
}

// New seeds the dataset with end dates relative to now, so every status is
// represented whenever the client starts.
func New(now time.Time) *Repository {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return &Repository{
		contracts: []*contract.Contract{
			{
				ID:            "C-1001",
				PropertyLabel: "AV. FEDERICO LACROZE 3060 9° F CABA",
				OwnerName:     "María Fernández",
				TenantName:    "Juan Pérez",
				StartDate:     today.AddDate(-1, 0, 0),
				EndDate:       today.AddDate(1, 0, 0),
				Amount:        550000,
				Currency:      contract.CurrencyARS,
				Adjustment:    contract.AdjustmentFor(contract.CurrencyARS),
			},
			{
				ID:            "C-1002",
				PropertyLabel: "CALLE HONDURAS 4500 2° B CABA",
				OwnerName:     "Carlos Gómez",
				TenantName:    "Lucía Martínez",
				StartDate:     today.AddDate(-2, 0, 30),
				EndDate:       today.AddDate(0, 0, 30),
				Amount:        900,
				Currency:      contract.CurrencyUSD,
				Adjustment:    contract.AdjustmentFor(contract.CurrencyUSD),
			},
			{
				ID:            "C-1003",
				PropertyLabel: "AV. CORRIENTES 1234 5° A CABA",
				OwnerName:     "Ana Rodríguez",
				TenantName:    "Diego López",
				StartDate:     today.AddDate(-3, 0, -10),
				EndDate:       today.AddDate(0, 0, -10),
				Amount:        320000,
				Currency:      contract.CurrencyARS,
				Adjustment:    contract.AdjustmentFor(contract.CurrencyARS),
			},
		},
		nextID: 2000,
	}
}

func (r *Repository) ListContracts(_ context.Context) ([]*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*contract.Contract, len(r.contracts))
	for i, c := range r.contracts {
		cp := *c
		out[i] = &cp
	}

	return out, nil
}

func (r *Repository) CreateContract(_ context.Context, params contract.CreateParams) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := fmt.Sprintf("C-%d", r.nextID)

	created := &contract.Contract{
		ID:            id,
		PropertyLabel: params.PropertyLabel,
		OwnerName:     params.OwnerName,
		TenantName:    params.TenantName,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Amount:        params.Amount,
		Currency:      params.Currency,
		Adjustment:    contract.AdjustmentFor(params.Currency),
	}

	r.contracts = append([]*contract.Contract{created}, r.contracts...)

	return id, nil
}

// Empty returns a repository with no contracts.
func Empty() *Repository {
	return &Repository{contracts: []*contract.Contract{}, nextID: 2000}
}
