package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// User is the profile the backend may return alongside a token.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}

	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}

	return u.FirstName + " " + u.LastName
}

type state struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Store holds the bearer token for the running client. A Store with an empty
// path never touches the disk.
type Store struct {
	mu    sync.RWMutex
	path  string
	state state
}

func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is the session file under the user's XDG config directory.
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("leasedesk", "session.json"))
	if err != nil {
		return "", fmt.Errorf("resolving session path: %w", err)
	}

	return path, nil
}

// Load initialises the store from disk. A missing file means no session.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading session: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decoding session: %w", err)
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	return nil
}

func (s *Store) Set(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state{Token: token, User: user}

	return s.persist()
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state{}

	if s.path == "" {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}

	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Token
}

func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.User == nil {
		return nil
	}

	u := *s.state.User

	return &u
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// persist must be called with mu held.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}

	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	return nil
}
