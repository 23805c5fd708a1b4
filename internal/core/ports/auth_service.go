package ports

import (
	"context"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// AuthService implements credential verification and session establishment.
type AuthService interface {
	// Login checks the identifier against administrators (by username) first,
	// then active customers (by email). Any failure returns
	// domain.ErrInvalidCredentials without revealing which check failed.
	Login(ctx context.Context, identifier, password string) (string, *domain.Session, error)

	// Logout terminates the session bound to the token.
	Logout(ctx context.Context, token string) error
}
