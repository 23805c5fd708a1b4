package service

import (
	"context"
	"time"

	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

// AdminService manages the administrator lifecycle. Uniqueness of username
// and email is delegated to the repository's unique indexes, so concurrent
// creates cannot race past a check-then-act window.
type AdminService struct {
	repo   ports.AdminRepository
	hasher ports.PasswordHasher
}

func NewAdminService(repo ports.AdminRepository, hasher ports.PasswordHasher) *AdminService {
	return &AdminService{repo: repo, hasher: hasher}
}

func (s *AdminService) List(ctx context.Context) ([]domain.Administrator, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) Get(ctx context.Context, id string) (*domain.Administrator, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AdminService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *AdminService) Create(ctx context.Context, in ports.CreateAdminInput) (*domain.Administrator, error) {
	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.Administrator{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
}

// Update replaces username and email, and the password hash only when a new
// password is supplied. An empty password keeps the stored hash untouched.
func (s *AdminService) Update(ctx context.Context, id string, in ports.UpdateAdminInput) (*domain.Administrator, error) {
	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.Username = in.Username
	admin.Email = in.Email
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete removes an administrator unless it is the acting identity.
func (s *AdminService) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return domain.ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}
