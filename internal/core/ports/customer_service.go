package ports

import (
	"context"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// CreateCustomerInput carries the fields for creating a customer. The account
// number is generated by the service, never supplied by the caller.
type CreateCustomerInput struct {
	FullName    string
	Email       string
	Password    string
	AccountType string
	Balance     float64
	Status      domain.CustomerStatus
}

// UpdateCustomerInput carries the fields for updating a customer. An empty
// Password means "keep the existing hash".
type UpdateCustomerInput struct {
	FullName    string
	Email       string
	Password    string
	AccountType string
	Balance     float64
	Status      domain.CustomerStatus
}

// CustomerService manages the customer lifecycle.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
