package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

// UserRepository defines the persistence operations required by the
// user service.
type UserRepository interface {
	// List returns up to limit users in insertion order.
	List(ctx context.Context, limit int) ([]models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, u models.User) error
	// Update applies the non-empty fields of patch to the record with
	// the given id and returns the result.
	Update(ctx context.Context, id string, patch models.User) (models.User, error)
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}

// UserService implements directory operations by delegating to a
// UserRepository.
type UserService struct {
	// repo performs the data-layer operations.
	repo UserRepository
}

// NewUserService constructs a UserService using the provided repository.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns up to limit users.
func (s *UserService) List(ctx context.Context, limit int) ([]models.User, error) {
	return s.repo.List(ctx, limit)
}

// Create stores a new user. A draft without an id is assigned one.
func (s *UserService) Create(ctx context.Context, draft models.User) (models.User, error) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if err := s.repo.Create(ctx, draft); err != nil {
		return models.User{}, err
	}
	return draft, nil
}

// Update applies patch to the record with the given id.
func (s *UserService) Update(ctx context.Context, id string, patch models.User) (models.User, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes the record with the given id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
