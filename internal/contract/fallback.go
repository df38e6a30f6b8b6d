package contract

import (
	"context"
	"log/slog"
)

// FallbackRepository reads from Primary and answers list requests from
// Fallback when Primary fails. Writes always go to Primary. It exists for
// development setups without a running backend.
type FallbackRepository struct {
	Primary  Repository
	Fallback Repository
}

func (r *FallbackRepository) ListContracts(ctx context.Context) ([]*Contract, error) {
	contracts, err := r.Primary.ListContracts(ctx)
	if err == nil {
		return contracts, nil
	}

	slog.Warn("primary contract source failed, serving fallback data", "error", err)

	return r.Fallback.ListContracts(ctx)
}

func (r *FallbackRepository) CreateContract(ctx context.Context, params CreateParams) (string, error) {
	return r.Primary.CreateContract(ctx, params)
}
