package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}

type Service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(repo Repository, secret string, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the clock tokens are issued and checked against.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Session is a freshly issued token and its owner.
type Session struct {
	Token string
	User  *User
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	u := &User{
		FirstName: strings.TrimSpace(params.FirstName),
		LastName:  strings.TrimSpace(params.LastName),
		Email:     normalizeEmail(params.Email),
	}

	if u.FirstName == "" || u.LastName == "" || u.Email == "" || params.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	if addr, err := mail.ParseAddress(u.Email); err != nil || addr.Address != u.Email {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(params.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u.PasswordHash = string(hash)

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *Service) User(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) issue(u *User) (*Session, error) {
	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(u.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &Session{Token: token, User: u}, nil
}

// Verify checks the token's signature and expiry and returns its user ID.
func (s *Service) Verify(token string) (int64, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidCredentials)
	}

	return id, nil
}
