package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// ContractRepository serves contract.Repository from the backend.
type ContractRepository struct {
	client *Client
}

func NewContractRepository(client *Client) *ContractRepository {
	return &ContractRepository{client: client}
}

func (r *ContractRepository) ListContracts(ctx context.Context) ([]*contract.Contract, error) {
	var out []ContractJSON
	if err := r.client.doJSON(ctx, http.MethodGet, "/contracts", nil, &out); err != nil {
		return nil, err
	}

	contracts := make([]*contract.Contract, 0, len(out))

	for _, j := range out {
		c, err := j.Contract()
		if err != nil {
			return nil, fmt.Errorf("decoding contracts: %w", err)
		}

		contracts = append(contracts, c)
	}

	return contracts, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, params contract.CreateParams) (string, error) {
	var out struct {
		ID string `json:"id"`
	}

	if err := r.client.doJSON(ctx, http.MethodPost, "/contracts", NewCreateRequest(params), &out); err != nil {
		return "", err
	}

	return out.ID, nil
}
