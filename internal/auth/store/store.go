package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, first_name, last_name, email, password_hash, created_at
func scanUser(s scanner) (*auth.User, error) {
	var u auth.User

	if err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}

		return nil, err
	}

	return &u, nil
}

const selectUserColumns = `id, first_name, last_name, email, password_hash, created_at`

func (s *Store) CreateUser(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return auth.ErrEmailTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil && !errors.Is(err, auth.ErrNotFound) {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return u, err
}

func (s *Store) GetUser(ctx context.Context, id int64) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil && !errors.Is(err, auth.ErrNotFound) {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, err
}
