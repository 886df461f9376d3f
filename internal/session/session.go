// Package session holds the single locally signed-in user. It is a mock:
// credentials are accepted as given and never stored.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/kv"
)

const (
	DefaultAdminEmail = "admin@example.com"
	PlaceholderAvatar = "https://via.placeholder.com/100"

	loginUserID = "1"
	adminName   = "Admin User"
	demoName    = "Demo User"
)

var ErrEmailRequired = errors.New("email is required")

type Store struct {
	kv         kv.Store
	adminEmail string

	mu   sync.RWMutex
	user *domain.User
}

// New returns a store with no signed-in user. An empty adminEmail selects
// DefaultAdminEmail.
func New(store kv.Store, adminEmail string) *Store {
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	return &Store{kv: store, adminEmail: adminEmail}
}

// Load restores the persisted user, if any. An unreadable or corrupt value
// leaves the store signed out.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, domain.KeyUser)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil
	}

	u, err := domain.UnmarshalRecord[*domain.User]([]byte(raw))
	if err != nil {
		log.Warnf("⚠️ Ignoring corrupt session: %v", err)
		return nil
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	if u != nil {
		log.Infof("👤 Restored session for %s", u.Email)
	}
	return nil
}

// Login signs in with any password. The admin email gets the admin role.
func (s *Store) Login(ctx context.Context, email, _ string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, ErrEmailRequired
	}

	u := domain.User{
		ID:     loginUserID,
		Name:   demoName,
		Email:  email,
		Role:   domain.RoleUser,
		Avatar: PlaceholderAvatar,
	}
	if strings.EqualFold(email, s.adminEmail) {
		u.Name = adminName
		u.Role = domain.RoleAdmin
	}

	return u, s.set(ctx, u)
}

// Register creates and signs in a regular user.
func (s *Store) Register(ctx context.Context, name, email, _ string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, ErrEmailRequired
	}

	u := domain.User{
		ID:     domain.NewID(""),
		Name:   strings.TrimSpace(name),
		Email:  email,
		Role:   domain.RoleUser,
		Avatar: PlaceholderAvatar,
	}

	return u, s.set(ctx, u)
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Remove(ctx, domain.KeyUser); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *Store) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsAdmin() bool {
	u, ok := s.Current()
	return ok && u.IsAdmin()
}

// set makes u current and writes it through. The in-memory session stands
// even when the write fails.
func (s *Store) set(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u

	value, err := u.RecordValue()
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.kv.Set(ctx, u.RecordKey(), string(value)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
