package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Session is the record bound to an opaque session token. The role is fixed
// at establishment; a role change requires terminate + establish.
type Session struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsAdmin reports whether the session holds the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

const sessionTokenBytes = 32

// GenerateSessionToken creates a random opaque token. The plaintext token is
// sent to the client; only its SHA-256 digest is used as a store key.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashSessionToken computes the hex-encoded SHA-256 digest of a token.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
