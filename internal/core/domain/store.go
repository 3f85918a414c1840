package domain

import "time"

// StoreStatus is whether a store still trades.
type StoreStatus string

const (
	StoreActive   StoreStatus = "active"
	StoreInactive StoreStatus = "inactive"
)

// Store is an outlet of the retail network.
type Store struct {
	ID        int64       `json:"id"         db:"id"`
	Name      string      `json:"name"       db:"name"`
	Address   *string     `json:"address"    db:"address"`
	Phone     *string     `json:"phone"      db:"phone"`
	Status    StoreStatus `json:"status"     db:"status"`
	RegionID  *int64      `json:"region_id"  db:"region_id"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// StoreInput carries the writable fields of a store for create and update.
type StoreInput struct {
	Name     string
	Address  *string
	Phone    *string
	Status   StoreStatus
	RegionID *int64
}

// StoreOption is the compact store view used by assignment dropdowns.
type StoreOption struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// Region groups stores geographically.
type Region struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// Role is a named privilege level.
type Role struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}
