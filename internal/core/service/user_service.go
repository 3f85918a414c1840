package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context, c ports.Criteria, p ports.Page) (*ports.PageResult[domain.User], error) {
	users, total, err := s.repo.List(ctx, c, p)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &ports.PageResult[domain.User]{
		Items:       users,
		TotalPages:  p.TotalPages(total),
		CurrentPage: p.Number,
	}, nil
}

// Update replaces a user's role, store, region and status.
func (s *UserService) Update(ctx context.Context, id int64, u domain.UserUpdate) error {
	if id < 1 {
		return domain.NewValidationError("user id must be a positive integer")
	}
	if u.RoleID < 1 {
		return domain.NewValidationError("role_id is required")
	}
	switch u.Status {
	case domain.UserPending, domain.UserActive, domain.UserInactive:
	default:
		return domain.NewValidationError("status must be one of: pending, active, inactive")
	}

	if err := s.repo.Update(ctx, id, u); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Int64("role_id", u.RoleID).Str("status", string(u.Status)).Msg("user updated")
	return nil
}
