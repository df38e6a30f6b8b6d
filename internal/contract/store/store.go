package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// idPrefix is prepended to the numeric primary key in every contract ID.
const idPrefix = "C-"

func FormatID(id int64) string {
	return idPrefix + strconv.FormatInt(id, 10)
}

func ParseID(s string) (int64, error) {
	n, ok := strings.CutPrefix(s, idPrefix)
	if !ok {
		return 0, fmt.Errorf("contract id %q: missing %s prefix", s, idPrefix)
	}

	return strconv.ParseInt(n, 10, 64)
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ForUser scopes the store to the contracts of one user.
func (s *Store) ForUser(userID int64) contract.Repository {
	return &UserStore{db: s.db, userID: userID}
}

// UserStore implements contract.Repository for a single user.
type UserStore struct {
	db     *sql.DB
	userID int64
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, property_label, owner_name, tenant_name, start_date, end_date, amount, currency
func scanContract(s scanner) (*contract.Contract, error) {
	var (
		c        contract.Contract
		id       int64
		currency string
	)

	if err := s.Scan(&id, &c.PropertyLabel, &c.OwnerName, &c.TenantName, &c.StartDate, &c.EndDate, &c.Amount, &currency); err != nil {
		return nil, err
	}

	c.ID = FormatID(id)
	c.Currency = contract.Currency(currency)
	c.Adjustment = contract.AdjustmentFor(c.Currency)

	return &c, nil
}

func (s *UserStore) ListContracts(ctx context.Context) ([]*contract.Contract, error) {
	query := `
		SELECT id, property_label, owner_name, tenant_name, start_date, end_date, amount, currency
		FROM contracts
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, s.userID)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	contracts := []*contract.Contract{}

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contracts: %w", err)
	}

	return contracts, nil
}

func (s *UserStore) CreateContract(ctx context.Context, p contract.CreateParams) (string, error) {
	query := `
		INSERT INTO contracts (user_id, property_label, owner_name, tenant_name, start_date, end_date, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`

	var id int64

	err := s.db.QueryRowContext(ctx, query,
		s.userID,
		p.PropertyLabel,
		p.OwnerName,
		p.TenantName,
		p.StartDate,
		p.EndDate,
		p.Amount,
		string(p.Currency),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting contract: %w", err)
	}

	return FormatID(id), nil
}
