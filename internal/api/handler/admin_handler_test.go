package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

type stubStoreService struct {
	created  domain.StoreInput
	updated  domain.StoreInput
	updateID int64
	deleteFn func(id int64) error
	items    []domain.Store
}

func (s *stubStoreService) List(_ context.Context, _ ports.Criteria, p ports.Page) (*ports.PageResult[domain.Store], error) {
	return &ports.PageResult[domain.Store]{Items: s.items, TotalPages: p.TotalPages(int64(len(s.items))), CurrentPage: p.Number}, nil
}

func (s *stubStoreService) Create(_ context.Context, in domain.StoreInput) (*domain.Store, error) {
	s.created = in
	return &domain.Store{ID: 11, Name: in.Name, Status: domain.StoreActive, RegionID: in.RegionID}, nil
}

func (s *stubStoreService) Update(_ context.Context, id int64, in domain.StoreInput) error {
	s.updateID, s.updated = id, in
	return nil
}

func (s *stubStoreService) Delete(_ context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubUserService struct {
	id     int64
	update domain.UserUpdate
	err    error
}

func (s *stubUserService) List(_ context.Context, _ ports.Criteria, p ports.Page) (*ports.PageResult[domain.User], error) {
	return &ports.PageResult[domain.User]{CurrentPage: p.Number}, s.err
}

func (s *stubUserService) Update(_ context.Context, id int64, u domain.UserUpdate) error {
	s.id, s.update = id, u
	return s.err
}

func TestStoreHandler_Create(t *testing.T) {
	svc := &stubStoreService{}
	h := NewStoreHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPost, "/api/stores", `{"name":"Toko Sentral","address":"Jl. Merdeka 1","region_id":0}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Toko Sentral", svc.created.Name)
	assert.Equal(t, "Jl. Merdeka 1", *svc.created.Address)
	assert.Nil(t, svc.created.RegionID, "region_id 0 means unassigned")

	var store domain.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &store))
	assert.Equal(t, int64(11), store.ID)
}

func TestStoreHandler_Create_Validation(t *testing.T) {
	h := NewStoreHandler(&stubStoreService{})

	for name, body := range map[string]string{
		"missing name":   `{"address":"x"}`,
		"invalid status": `{"name":"Toko","status":"closed"}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/stores", body)
			err := h.Create(c)
			assert.True(t, domain.IsValidation(err), "got %v", err)
		})
	}
}

func TestStoreHandler_Update(t *testing.T) {
	svc := &stubStoreService{}
	h := NewStoreHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPut, "/api/stores/5", `{"name":"Toko Baru","status":"inactive","region_id":2}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"store updated"}`, rec.Body.String())
	assert.Equal(t, int64(5), svc.updateID)
	assert.Equal(t, domain.StoreInactive, svc.updated.Status)
	assert.Equal(t, int64(2), *svc.updated.RegionID)
}

func TestStoreHandler_Delete(t *testing.T) {
	svc := &stubStoreService{deleteFn: func(id int64) error {
		if id == 3 {
			return domain.ErrStoreHasUsers
		}
		return nil
	}}
	h := NewStoreHandler(svc)

	c, _ := jsonContext(newTestEcho(), http.MethodDelete, "/api/stores/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.ErrorIs(t, h.Delete(c), domain.ErrStoreHasUsers)

	c, _ = jsonContext(newTestEcho(), http.MethodDelete, "/api/stores/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	assert.True(t, domain.IsValidation(h.Delete(c)))
}

func TestStoreHandler_List_EmptyIsArray(t *testing.T) {
	h := NewStoreHandler(&stubStoreService{})

	c, rec := jsonContext(newTestEcho(), http.MethodGet, "/api/stores?page=2", "")
	require.NoError(t, h.List(c))
	assert.JSONEq(t, `{"stores":[],"totalPages":0,"currentPage":2}`, rec.Body.String())
}

func TestUserHandler_Update(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPut, "/api/users/8", `{"role_id":3,"store_id":4,"region_id":null,"status":"active"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(8), svc.id)
	assert.Equal(t, int64(3), svc.update.RoleID)
	assert.Equal(t, int64(4), *svc.update.StoreID)
	assert.Nil(t, svc.update.RegionID)
	assert.Equal(t, domain.UserActive, svc.update.Status)
}

func TestUserHandler_Update_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := jsonContext(newTestEcho(), http.MethodPut, "/api/users/8", `{"role_id":3,"status":"banned"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")

	err := h.Update(c)
	require.True(t, domain.IsValidation(err), "got %v", err)
	assert.Equal(t, "status must be one of: pending, active, inactive", err.Error())
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrUserNotFound})

	c, _ := jsonContext(newTestEcho(), http.MethodPut, "/api/users/404", `{"role_id":2,"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("404")
	assert.True(t, errors.Is(h.Update(c), domain.ErrUserNotFound))
}
