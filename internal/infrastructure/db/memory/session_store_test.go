package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

func TestSessionStore_EstablishAndGet(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)

	token, err := store.Establish(context.Background(), domain.Session{
		UserID:      "admin_1",
		DisplayName: "root",
		Role:        domain.RoleAdmin,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected opaque token")
	}

	session, err := store.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if session.UserID != "admin_1" || session.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	if _, err := store.Get(context.Background(), "bogus"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_IdleExpiry(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Establish(context.Background(), domain.Session{UserID: "u1", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("establish failed: %v", err)
	}

	// Activity at 20m refreshes the idle deadline.
	current = current.Add(20 * time.Minute)
	if _, err := store.Get(context.Background(), token); err != nil {
		t.Fatalf("get within idle window failed: %v", err)
	}

	// Another 20m of idleness is still within the refreshed window.
	current = current.Add(20 * time.Minute)
	if _, err := store.Get(context.Background(), token); err != nil {
		t.Fatalf("get after refresh failed: %v", err)
	}

	// 31m of idleness expires the session.
	current = current.Add(31 * time.Minute)
	if _, err := store.Get(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestSessionStore_Terminate(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)

	token, err := store.Establish(context.Background(), domain.Session{UserID: "u1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if err := store.Terminate(context.Background(), token); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}
	if _, err := store.Get(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session survived terminate: %v", err)
	}

	// Terminating again is a no-op.
	if err := store.Terminate(context.Background(), token); err != nil {
		t.Fatalf("second terminate errored: %v", err)
	}
}

func TestSessionStore_TokensAreOpaqueAndDistinct(t *testing.T) {
	store := NewSessionStore(time.Minute)

	t1, _ := store.Establish(context.Background(), domain.Session{UserID: "u1", Role: domain.RoleAdmin})
	t2, _ := store.Establish(context.Background(), domain.Session{UserID: "u1", Role: domain.RoleAdmin})
	if t1 == t2 {
		t.Fatalf("two establishments produced the same token")
	}
	if len(t1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(t1))
	}
}
