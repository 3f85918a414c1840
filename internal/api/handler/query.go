package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

// listingQuery reads page, limit, search, storeId, regionId, startDate and
// endDate. Unparseable page and limit fall back to their defaults.
func listingQuery(c echo.Context) (ports.Criteria, ports.Page, error) {
	page := ports.NewPage(atoiOr(c.QueryParam("page"), ports.DefaultPage), atoiOr(c.QueryParam("limit"), ports.DefaultLimit))

	crit := ports.Criteria{Search: strings.TrimSpace(c.QueryParam("search"))}

	var err error
	if crit.StoreID, err = idParam(c, "storeId"); err != nil {
		return ports.Criteria{}, ports.Page{}, err
	}
	if crit.RegionID, err = idParam(c, "regionId"); err != nil {
		return ports.Criteria{}, ports.Page{}, err
	}
	if crit.DateRange, err = dateRange(c); err != nil {
		return ports.Criteria{}, ports.Page{}, err
	}
	return crit, page, nil
}

func atoiOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

func idParam(c echo.Context, name string) (*int64, error) {
	id, ok := ports.ParseID(c.QueryParam(name))
	if !ok {
		return nil, domain.NewValidationError(name + ` must be a positive integer or "all"`)
	}
	return id, nil
}

// dateRange returns nil unless both startDate and endDate are present.
func dateRange(c echo.Context) (*ports.DateRange, error) {
	rawStart := strings.TrimSpace(c.QueryParam("startDate"))
	rawEnd := strings.TrimSpace(c.QueryParam("endDate"))
	if rawStart == "" || rawEnd == "" {
		return nil, nil
	}

	start, err := time.Parse(ports.DateLayout, rawStart)
	if err != nil {
		return nil, domain.NewValidationError("startDate must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(ports.DateLayout, rawEnd)
	if err != nil {
		return nil, domain.NewValidationError("endDate must be formatted as YYYY-MM-DD")
	}
	return &ports.DateRange{Start: start, End: end}, nil
}
