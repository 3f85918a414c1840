package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

var (
	_ ports.CredentialStore = (*UserRepository)(nil)
	_ ports.UserRepository  = (*UserRepository)(nil)
)

var userColumns = Columns{
	Search: []string{"u.full_name", "u.telegram_username"},
	Store:  "u.store_id",
	Region: "u.region_id",
}

const (
	userSelect = `
		SELECT u.id, u.telegram_chat_id, u.telegram_username, u.full_name, u.status,
		       r.name AS role_name, rg.name AS region_name,
		       COALESCE(ps.name, acs.name) AS store_name,
		       u.role_id, u.store_id, u.region_id, u.created_at
		FROM users u
		LEFT JOIN roles r ON u.role_id = r.id
		LEFT JOIN regions rg ON u.region_id = rg.id
		LEFT JOIN stores ps ON u.store_id = ps.id
		LEFT JOIN stores acs ON u.active_store_id = acs.id`
	userCount   = `SELECT COUNT(*) FROM users u`
	userOrderBy = "u.created_at DESC, u.id DESC"
)

// UserRepository serves both authentication lookups and user administration.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindPrivilegedByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	const query = `
		SELECT id, telegram_username, COALESCE(full_name, ''), COALESCE(password, ''), password_hashed, role_id
		FROM users
		WHERE telegram_username = $1 AND role_id = $2`

	var c domain.Credential
	err := r.db.QueryRow(ctx, query, username, domain.PrivilegedRoleID).
		Scan(&c.ID, &c.Username, &c.FullName, &c.Password, &c.Hashed, &c.RoleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &c, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password = $1, password_hashed = TRUE WHERE id = $2`, hash, userID)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) FindIdentity(ctx context.Context, userID int64) (*domain.Identity, error) {
	const query = `SELECT id, COALESCE(full_name, ''), COALESCE(role_id, 0) FROM users WHERE id = $1`

	var id domain.Identity
	if err := r.db.QueryRow(ctx, query, userID).Scan(&id.ID, &id.FullName, &id.RoleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return &id, nil
}

func (r *UserRepository) List(ctx context.Context, c ports.Criteria, p ports.Page) ([]domain.User, int64, error) {
	q := NewFilter(c, userColumns).Query(userSelect, userCount, userOrderBy)
	users, total, err := listPage[domain.User](ctx, r.db, q, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, u domain.UserUpdate) error {
	const query = `UPDATE users SET role_id = $1, store_id = $2, region_id = $3, status = $4 WHERE id = $5`

	tag, err := r.db.Exec(ctx, query, u.RoleID, u.StoreID, u.RegionID, string(u.Status), id)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUnknownReference
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
