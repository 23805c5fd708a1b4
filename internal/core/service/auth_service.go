package service

import (
	"context"
	"errors"
	"time"

	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

// AuthService implements login, logout, and first-startup seeding.
type AuthService struct {
	admins    ports.AdminRepository
	customers ports.CustomerRepository
	sessions  ports.SessionStore
	hasher    ports.PasswordHasher
}

func NewAuthService(admins ports.AdminRepository, customers ports.CustomerRepository, sessions ports.SessionStore, hasher ports.PasswordHasher) *AuthService {
	return &AuthService{admins: admins, customers: customers, sessions: sessions, hasher: hasher}
}

// Login resolves the identifier with fixed precedence: administrator by
// username first, then active customer by email. Every failure path collapses
// into domain.ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.Session, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, identifier)
	switch {
	case err == nil:
		if s.hasher.Verify(password, admin.PasswordHash) {
			return s.establish(ctx, admin.ID, admin.Username, domain.RoleAdmin)
		}
	case !errors.Is(err, domain.ErrAdminNotFound):
		return "", nil, err
	}

	customer, err := s.customers.FindByEmail(ctx, identifier)
	switch {
	case err == nil:
		if customer.Status == domain.StatusActive && s.hasher.Verify(password, customer.PasswordHash) {
			return s.establish(ctx, customer.ID, customer.FullName, domain.RoleCustomer)
		}
	case !errors.Is(err, domain.ErrCustomerNotFound):
		return "", nil, err
	}

	return "", nil, domain.ErrInvalidCredentials
}

func (s *AuthService) establish(ctx context.Context, userID, displayName, role string) (string, *domain.Session, error) {
	session := domain.Session{
		UserID:      userID,
		DisplayName: displayName,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}
	token, err := s.sessions.Establish(ctx, session)
	if err != nil {
		return "", nil, err
	}
	return token, &session, nil
}

// Logout terminates the session bound to the token. Unknown tokens are a
// no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Terminate(ctx, token)
}

// EnsureSeedAdmin creates the default administrator when no administrators
// exist. Called once at startup; the runtime contract only depends on the
// create operation it uses.
func (s *AuthService) EnsureSeedAdmin(ctx context.Context, username, email, password string) error {
	n, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	_, err = s.admins.Create(ctx, &domain.Administrator{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}
