package ports

// PasswordHasher is the one-way salted hash primitive used for stored
// credentials.
type PasswordHasher interface {
	// Hash produces a salted digest; two calls with the same plaintext yield
	// different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the digest. A malformed digest
	// verifies false, never panics.
	Verify(plaintext, digest string) bool
}
