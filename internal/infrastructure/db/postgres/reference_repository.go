package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

var _ ports.ReferenceRepository = (*ReferenceRepository)(nil)

// ReferenceRepository reads the lookup tables.
type ReferenceRepository struct {
	db DB
}

func NewReferenceRepository(db DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) Roles(ctx context.Context) ([]domain.Role, error) {
	return collectAll[domain.Role](ctx, r.db, "roles", `SELECT id, name FROM roles ORDER BY name ASC`)
}

// ActiveStores lists the stores users may be assigned to.
func (r *ReferenceRepository) ActiveStores(ctx context.Context) ([]domain.StoreOption, error) {
	return collectAll[domain.StoreOption](ctx, r.db, "active stores",
		`SELECT id, name FROM stores WHERE status = 'active' ORDER BY name ASC`)
}

func (r *ReferenceRepository) Regions(ctx context.Context) ([]domain.Region, error) {
	return collectAll[domain.Region](ctx, r.db, "regions", `SELECT id, name FROM regions ORDER BY name ASC`)
}

func collectAll[T any](ctx context.Context, db DB, what, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	return items, nil
}
