package service

import (
	"context"
	"fmt"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// stubHasher is a transparent hasher for service tests; real hashing is
// covered by the crypto package tests.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (stubHasher) Verify(plaintext, digest string) bool { return digest == "hashed:"+plaintext }

// stubAdminRepo keeps administrators in a map and mimics the store's unique
// indexes on username and email.
type stubAdminRepo struct {
	admins map[string]*domain.Administrator
	nextID int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Administrator)}
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Administrator, error) {
	if a, ok := r.admins[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Administrator, error) {
	for _, a := range r.admins {
		if a.Username == username {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) List(_ context.Context) ([]domain.Administrator, error) {
	out := make([]domain.Administrator, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Administrator) (*domain.Administrator, error) {
	for _, a := range r.admins {
		if a.Username == admin.Username {
			return nil, &domain.DuplicateKeyError{Field: "username"}
		}
		if a.Email == admin.Email {
			return nil, &domain.DuplicateKeyError{Field: "email"}
		}
	}
	r.nextID++
	clone := *admin
	clone.ID = fmt.Sprintf("admin_%d", r.nextID)
	r.admins[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubAdminRepo) Update(_ context.Context, admin *domain.Administrator) error {
	if _, ok := r.admins[admin.ID]; !ok {
		return domain.ErrAdminNotFound
	}
	for id, a := range r.admins {
		if id == admin.ID {
			continue
		}
		if a.Username == admin.Username {
			return &domain.DuplicateKeyError{Field: "username"}
		}
		if a.Email == admin.Email {
			return &domain.DuplicateKeyError{Field: "email"}
		}
	}
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.admins[id]; !ok {
		return domain.ErrAdminNotFound
	}
	delete(r.admins, id)
	return nil
}

// stubCustomerRepo mimics the unique indexes on email and account_number.
type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int

	// forceAccountCollisions makes the next N creates fail with an
	// account_number duplicate, to exercise the retry path.
	forceAccountCollisions int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *stubCustomerRepo) CountByStatus(_ context.Context, status domain.CustomerStatus) (int64, error) {
	var n int64
	for _, c := range r.customers {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if r.forceAccountCollisions > 0 {
		r.forceAccountCollisions--
		return nil, &domain.DuplicateKeyError{Field: "account_number"}
	}
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return nil, &domain.DuplicateKeyError{Field: "email"}
		}
		if c.AccountNumber == customer.AccountNumber {
			return nil, &domain.DuplicateKeyError{Field: "account_number"}
		}
	}
	r.nextID++
	clone := *customer
	clone.ID = fmt.Sprintf("cust_%d", r.nextID)
	r.customers[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	for id, c := range r.customers {
		if id == customer.ID {
			continue
		}
		if c.Email == customer.Email {
			return &domain.DuplicateKeyError{Field: "email"}
		}
	}
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

// stubSessionStore records sessions by token without any expiry.
type stubSessionStore struct {
	sessions map[string]domain.Session
	nextID   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Establish(_ context.Context, session domain.Session) (string, error) {
	s.nextID++
	token := fmt.Sprintf("token_%d", s.nextID)
	s.sessions[token] = session
	return token, nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	if sess, ok := s.sessions[token]; ok {
		return &sess, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Terminate(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}
