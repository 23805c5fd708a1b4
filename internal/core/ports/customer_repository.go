package ports

import (
	"context"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// CustomerRepository defines the persistence interface for customers.
// Uniqueness of email and account number is enforced at the write boundary; a
// violation surfaces as *domain.DuplicateKeyError.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.CustomerStatus) (int64, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}
