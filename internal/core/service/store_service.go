package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

type StoreService struct {
	repo ports.StoreRepository
	log  zerolog.Logger
}

func NewStoreService(repo ports.StoreRepository, log zerolog.Logger) *StoreService {
	return &StoreService{repo: repo, log: log}
}

func (s *StoreService) List(ctx context.Context, c ports.Criteria, p ports.Page) (*ports.PageResult[domain.Store], error) {
	stores, total, err := s.repo.List(ctx, c, p)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return &ports.PageResult[domain.Store]{
		Items:       stores,
		TotalPages:  p.TotalPages(total),
		CurrentPage: p.Number,
	}, nil
}

func (s *StoreService) Create(ctx context.Context, in domain.StoreInput) (*domain.Store, error) {
	in, err := normalizeStoreInput(in)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("store_id", created.ID).Str("name", created.Name).Msg("store created")
	return created, nil
}

func (s *StoreService) Update(ctx context.Context, id int64, in domain.StoreInput) error {
	in, err := normalizeStoreInput(in)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}
	s.log.Info().Int64("store_id", id).Msg("store updated")
	return nil
}

// Delete removes a store that nothing references. Assigned users are checked
// up front; transactions are caught by the foreign key.
func (s *StoreService) Delete(ctx context.Context, id int64) error {
	users, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return fmt.Errorf("delete store: count users: %w", err)
	}
	if users > 0 {
		return domain.ErrStoreHasUsers
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("store_id", id).Msg("store deleted")
	return nil
}

func normalizeStoreInput(in domain.StoreInput) (domain.StoreInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, domain.NewValidationError("store name must not be empty")
	}
	in.Address = trimmedOrNil(in.Address)
	in.Phone = trimmedOrNil(in.Phone)
	switch in.Status {
	case "":
		in.Status = domain.StoreActive
	case domain.StoreActive, domain.StoreInactive:
	default:
		return in, domain.NewValidationError("status must be 'active' or 'inactive'")
	}
	return in, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
