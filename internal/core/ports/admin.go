package ports

import (
	"context"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

// UserRepository persists user administration.
type UserRepository interface {
	List(ctx context.Context, c Criteria, p Page) ([]domain.User, int64, error)
	Update(ctx context.Context, id int64, u domain.UserUpdate) error
}

type UserService interface {
	List(ctx context.Context, c Criteria, p Page) (*PageResult[domain.User], error)
	Update(ctx context.Context, id int64, u domain.UserUpdate) error
}

// StoreRepository persists stores.
type StoreRepository interface {
	List(ctx context.Context, c Criteria, p Page) ([]domain.Store, int64, error)
	Create(ctx context.Context, in domain.StoreInput) (*domain.Store, error)
	Update(ctx context.Context, id int64, in domain.StoreInput) error
	CountUsers(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type StoreService interface {
	List(ctx context.Context, c Criteria, p Page) (*PageResult[domain.Store], error)
	Create(ctx context.Context, in domain.StoreInput) (*domain.Store, error)
	Update(ctx context.Context, id int64, in domain.StoreInput) error
	Delete(ctx context.Context, id int64) error
}

// ReferenceRepository serves the lookup lists used by assignment forms.
type ReferenceRepository interface {
	Roles(ctx context.Context) ([]domain.Role, error)
	ActiveStores(ctx context.Context) ([]domain.StoreOption, error)
	Regions(ctx context.Context) ([]domain.Region, error)
}
