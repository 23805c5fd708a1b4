package ports

import (
	"context"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// CreateAdminInput carries the fields for creating an administrator.
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
}

// UpdateAdminInput carries the fields for updating an administrator. An empty
// Password means "keep the existing hash".
type UpdateAdminInput struct {
	Username string
	Email    string
	Password string
}

// AdminService manages the administrator lifecycle.
type AdminService interface {
	List(ctx context.Context) ([]domain.Administrator, error)
	Get(ctx context.Context, id string) (*domain.Administrator, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, in CreateAdminInput) (*domain.Administrator, error)
	Update(ctx context.Context, id string, in UpdateAdminInput) (*domain.Administrator, error)

	// Delete removes an administrator. actorID is the acting session's
	// identity; deleting it returns domain.ErrSelfDelete.
	Delete(ctx context.Context, id, actorID string) error
}
