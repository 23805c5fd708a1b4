package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

const (
	accountNumberPrefix = "ACC"
	accountNumberDigits = 10
	// accountNumberAttempts bounds insert retries when a generated number
	// collides with an existing one. At 10^10 numbers a second collision in a
	// row is vanishingly unlikely.
	accountNumberAttempts = 3
)

// CustomerService manages the customer lifecycle. Email and account-number
// uniqueness live in the repository's unique indexes; account-number
// collisions are handled by regenerating and re-inserting.
type CustomerService struct {
	repo   ports.CustomerRepository
	hasher ports.PasswordHasher
}

func NewCustomerService(repo ports.CustomerRepository, hasher ports.PasswordHasher) *CustomerService {
	return &CustomerService{repo: repo, hasher: hasher}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *CustomerService) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, domain.StatusActive)
}

func (s *CustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	var missing []string
	if in.FullName == "" {
		missing = append(missing, "full_name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if in.AccountType == "" {
		missing = append(missing, "account_type")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !status.Valid() {
		return nil, &domain.ValidationError{Fields: []string{"status"}}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		AccountType:  in.AccountType,
		Balance:      in.Balance,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		customer.AccountNumber, err = generateAccountNumber()
		if err != nil {
			return nil, err
		}

		created, err := s.repo.Create(ctx, customer)
		if err == nil {
			return created, nil
		}

		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) && dup.Field == "account_number" {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("account number generation exhausted %d attempts", accountNumberAttempts)
}

// Update replaces the editable fields; the account number never changes after
// creation and an empty password keeps the stored hash untouched.
func (s *CustomerService) Update(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	var missing []string
	if in.FullName == "" {
		missing = append(missing, "full_name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.AccountType == "" {
		missing = append(missing, "account_type")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !status.Valid() {
		return nil, &domain.ValidationError{Fields: []string{"status"}}
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.FullName = in.FullName
	customer.Email = in.Email
	customer.AccountType = in.AccountType
	customer.Balance = in.Balance
	customer.Status = status
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer unconditionally; customers never hold delete
// rights over their own record, so no self-delete guard applies.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// generateAccountNumber draws a fixed-width random number from crypto/rand.
// The space is 10^10, against the store's unique index rather than any
// in-process bookkeeping.
func generateAccountNumber() (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(accountNumberDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate account number: %w", err)
	}
	return fmt.Sprintf("%s%0*d", accountNumberPrefix, accountNumberDigits, n), nil
}
