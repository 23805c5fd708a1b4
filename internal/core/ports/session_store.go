package ports

import (
	"context"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// SessionStore maps opaque tokens to session records. Implementations expire
// sessions after an idle timeout; Get refreshes the idle deadline on every
// hit.
type SessionStore interface {
	// Establish stores the session and returns the opaque token the client
	// must present on subsequent requests.
	Establish(ctx context.Context, session domain.Session) (string, error)

	// Get resolves a token to its session, refreshing the idle deadline.
	// Returns domain.ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*domain.Session, error)

	// Terminate clears the session bound to the token. Terminating an unknown
	// token is not an error.
	Terminate(ctx context.Context, token string) error
}
