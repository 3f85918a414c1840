package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

type StoreHandler struct {
	service ports.StoreService
}

func NewStoreHandler(service ports.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// List handles GET /api/stores.
//
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Security     TokenAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10)"
// @Param        search    query     string  false  "Substring of name or address"
// @Param        regionId  query     string  false  "Region id or \"all\""
// @Success      200       {object}  storeListResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	crit, page, err := listingQuery(c)
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), crit, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, storeListResponse{
		Stores:      nonNil(res.Items),
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
	})
}

// Create handles POST /api/stores.
//
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      storeRequest  true  "Store"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req storeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	store, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, store)
}

// Update handles PUT /api/stores/:id.
//
// @Summary      Replace a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int           true  "Store id"
// @Param        body  body      storeRequest  true  "Store"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/stores/{id} [put]
func (h *StoreHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req storeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, req.input()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "store updated"})
}

// Delete handles DELETE /api/stores/:id.
//
// @Summary      Delete a store
// @Description  Fails while users are assigned to the store or once it has transactions.
// @Tags         stores
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Store id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/stores/{id} [delete]
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "store deleted"})
}

func (r storeRequest) input() domain.StoreInput {
	return domain.StoreInput{
		Name:     r.Name,
		Address:  r.Address,
		Phone:    r.Phone,
		Status:   domain.StoreStatus(r.Status),
		RegionID: optionalID(r.RegionID),
	}
}
