package ports

import (
	"context"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// AdminRepository defines the persistence interface for administrators.
// Uniqueness of username and email is enforced at the write boundary; a
// violation surfaces as *domain.DuplicateKeyError.
type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Administrator, error)
	FindByUsername(ctx context.Context, username string) (*domain.Administrator, error)
	List(ctx context.Context) ([]domain.Administrator, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error)
	Update(ctx context.Context, admin *domain.Administrator) error
	Delete(ctx context.Context, id string) error
}
