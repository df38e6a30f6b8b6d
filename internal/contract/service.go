package contract

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	ListContracts(ctx context.Context) ([]*Contract, error)
	CreateContract(ctx context.Context, params CreateParams) (string, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the clock statuses are derived from.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Now is the clock every status on screen is derived from.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) List(ctx context.Context) ([]*Contract, error) {
	contracts, err := s.repo.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}

	return contracts, nil
}

// Create validates params and, only when they are complete, asks the
// repository to store the contract. It returns the backend-assigned ID.
func (s *Service) Create(ctx context.Context, params CreateParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.CreateContract(ctx, params)
	if err != nil {
		return "", fmt.Errorf("creating contract: %w", err)
	}

	return id, nil
}

// EndingIn returns the contracts whose end date is exactly days away from now.
func (s *Service) EndingIn(ctx context.Context, days int) ([]*Contract, error) {
	contracts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()

	var matches []*Contract

	for _, c := range contracts {
		if c.EndDate.IsZero() {
			continue
		}

		if c.DaysLeft(now) == days {
			matches = append(matches, c)
		}
	}

	return matches, nil
}
