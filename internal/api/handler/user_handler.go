package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

// UserHandler serves user administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10)"
// @Param        search    query     string  false  "Substring of full name or telegram username"
// @Param        storeId   query     string  false  "Store id or \"all\""
// @Param        regionId  query     string  false  "Region id or \"all\""
// @Success      200       {object}  userListResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	crit, page, err := listingQuery(c)
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), crit, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Users:       nonNil(res.Items),
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
	})
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user's role, store, region and status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "New assignment"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, domain.UserUpdate{
		RoleID:   req.RoleID,
		StoreID:  optionalID(req.StoreID),
		RegionID: optionalID(req.RegionID),
		Status:   domain.UserStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "user updated"})
}
