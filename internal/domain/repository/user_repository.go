package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
)

// UserRepository defines the interface for auth identity operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository defines the interface for profile operations. Profiles
// share their primary key with the owning user.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Profile, error)
	ListByRole(ctx context.Context, role string) ([]entity.Profile, error)
}
