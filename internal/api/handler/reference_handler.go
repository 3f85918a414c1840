package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/ports"
)

// ReferenceHandler serves the lookup lists behind the admin forms.
type ReferenceHandler struct {
	repo ports.ReferenceRepository
}

func NewReferenceHandler(repo ports.ReferenceRepository) *ReferenceHandler {
	return &ReferenceHandler{repo: repo}
}

// Roles handles GET /api/users/roles.
//
// @Summary      List roles
// @Tags         reference
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Role
// @Failure      401  {object}  errorResponse
// @Router       /api/users/roles [get]
func (h *ReferenceHandler) Roles(c echo.Context) error {
	roles, err := h.repo.Roles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(roles))
}

// ActiveStores handles GET /api/users/stores.
//
// @Summary      List active stores
// @Tags         reference
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.StoreOption
// @Failure      401  {object}  errorResponse
// @Router       /api/users/stores [get]
func (h *ReferenceHandler) ActiveStores(c echo.Context) error {
	stores, err := h.repo.ActiveStores(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(stores))
}

// Regions handles GET /api/regions.
//
// @Summary      List regions
// @Tags         reference
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Region
// @Failure      401  {object}  errorResponse
// @Router       /api/regions [get]
func (h *ReferenceHandler) Regions(c echo.Context) error {
	regions, err := h.repo.Regions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(regions))
}
