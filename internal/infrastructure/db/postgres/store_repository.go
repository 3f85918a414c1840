package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

var _ ports.StoreRepository = (*StoreRepository)(nil)

var storeColumns = Columns{
	Search: []string{"s.name", "s.address"},
	Region: "s.region_id",
}

const (
	storeFields  = `s.id, s.name, s.address, s.phone, s.status, s.region_id, s.created_at`
	storeSelect  = `SELECT ` + storeFields + ` FROM stores s`
	storeCount   = `SELECT COUNT(*) FROM stores s`
	storeOrderBy = "s.name ASC"
)

type StoreRepository struct {
	db DB
}

func NewStoreRepository(db DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) List(ctx context.Context, c ports.Criteria, p ports.Page) ([]domain.Store, int64, error) {
	q := NewFilter(c, storeColumns).Query(storeSelect, storeCount, storeOrderBy)
	stores, total, err := listPage[domain.Store](ctx, r.db, q, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	return stores, total, nil
}

func (r *StoreRepository) Create(ctx context.Context, in domain.StoreInput) (*domain.Store, error) {
	const query = `
		INSERT INTO stores AS s (name, address, phone, status, region_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + storeFields

	rows, err := r.db.Query(ctx, query, in.Name, in.Address, in.Phone, string(in.Status), in.RegionID)
	if err != nil {
		return nil, r.writeError("create store", err)
	}
	store, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Store])
	if err != nil {
		return nil, r.writeError("create store", err)
	}
	return &store, nil
}

func (r *StoreRepository) Update(ctx context.Context, id int64, in domain.StoreInput) error {
	const query = `
		UPDATE stores SET name = $1, address = $2, phone = $3, status = $4, region_id = $5
		WHERE id = $6`

	tag, err := r.db.Exec(ctx, query, in.Name, in.Address, in.Phone, string(in.Status), in.RegionID, id)
	if err != nil {
		return r.writeError("update store", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

// CountUsers counts users whose primary or active store is id; either
// reference blocks deletion.
func (r *StoreRepository) CountUsers(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE store_id = $1 OR active_store_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count store users: %w", err)
	}
	return n, nil
}

func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrStoreHasTransactions
		}
		return fmt.Errorf("delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (r *StoreRepository) writeError(op string, err error) error {
	switch pgCode(err) {
	case codeUniqueViolation:
		return domain.ErrStoreNameTaken
	case codeForeignKeyViolation:
		return domain.ErrUnknownReference
	}
	return fmt.Errorf("%s: %w", op, err)
}
