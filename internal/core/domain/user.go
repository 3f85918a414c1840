package domain

import "time"

// PrivilegedRoleID is the "Super Admin" role. Authorization compares role ids,
// never labels.
const PrivilegedRoleID int64 = 1

// PrivilegedRoleLabel is the role label embedded in issued session tokens.
const PrivilegedRoleLabel = "Super Admin"

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserPending  UserStatus = "pending"
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Credential is the slice of a user row needed to authenticate it.
// Hashed is false while Password still holds a legacy plaintext value.
type Credential struct {
	ID       int64
	Username string
	FullName string
	Password string
	Hashed   bool
	RoleID   int64
}

// Identity is what an authenticated request carries. It is always loaded
// fresh from the store, so RoleID reflects the current role.
type Identity struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	RoleID   int64  `json:"role_id"`
}

// IsPrivileged reports whether the identity holds the Super Admin role.
func (i Identity) IsPrivileged() bool {
	return i.RoleID == PrivilegedRoleID
}

// SessionUser is the identity summary returned on login.
type SessionUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// User is a row of the user listing, joined with role, region and store names.
type User struct {
	ID               int64      `json:"id"               db:"id"`
	TelegramChatID   *string    `json:"telegram_chat_id"  db:"telegram_chat_id"`
	TelegramUsername *string    `json:"telegram_username" db:"telegram_username"`
	FullName         *string    `json:"full_name"         db:"full_name"`
	Status           UserStatus `json:"status"            db:"status"`
	RoleName         *string    `json:"role_name"         db:"role_name"`
	RegionName       *string    `json:"region_name"       db:"region_name"`
	StoreName        *string    `json:"store_name"        db:"store_name"`
	RoleID           *int64     `json:"role_id"           db:"role_id"`
	StoreID          *int64     `json:"store_id"          db:"store_id"`
	RegionID         *int64     `json:"region_id"         db:"region_id"`
	CreatedAt        time.Time  `json:"created_at"        db:"created_at"`
}

// UserUpdate replaces the administrative fields of a user.
// Nil StoreID or RegionID clears the assignment.
type UserUpdate struct {
	RoleID   int64
	StoreID  *int64
	RegionID *int64
	Status   UserStatus
}
