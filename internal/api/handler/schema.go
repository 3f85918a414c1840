package handler

import "github.com/retailnet/pos-admin/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string              `json:"token"`
	User  *domain.SessionUser `json:"user"`
}

// --- Users ---

type updateUserRequest struct {
	RoleID   int64  `json:"role_id"   validate:"required,gt=0"`
	StoreID  *int64 `json:"store_id"`
	RegionID *int64 `json:"region_id"`
	Status   string `json:"status"    validate:"required,oneof=pending active inactive"`
}

type userListResponse struct {
	Users       []domain.User `json:"users"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// --- Stores ---

type storeRequest struct {
	Name     string  `json:"name"      validate:"required"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Status   string  `json:"status"    validate:"omitempty,oneof=active inactive"`
	RegionID *int64  `json:"region_id"`
}

type storeListResponse struct {
	Stores      []domain.Store `json:"stores"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// --- Transactions ---

type transactionListResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
}

// nonNil keeps empty collections serialised as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// optionalID treats a zero or negative id in a body as "unassigned".
func optionalID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}
