package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/ports"
)

// MIMESpreadsheet is the content type of exported workbooks.
const MIMESpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List handles GET /api/transactions.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     TokenAuth
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10)"
// @Param        search     query     string  false  "Substring of invoice number, cashier or payment method"
// @Param        storeId    query     string  false  "Store id or \"all\"; wins over regionId"
// @Param        regionId   query     string  false  "Region id or \"all\""
// @Param        startDate  query     string  false  "YYYY-MM-DD, applied only with endDate"
// @Param        endDate    query     string  false  "YYYY-MM-DD, inclusive of the whole day"
// @Success      200        {object}  transactionListResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	crit, page, err := listingQuery(c)
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), crit, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transactionListResponse{
		Transactions: nonNil(res.Items),
		TotalPages:   res.TotalPages,
		CurrentPage:  res.CurrentPage,
	})
}

// Export handles GET /api/transactions/export.
//
// @Summary      Export transactions as a spreadsheet
// @Tags         transactions
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     TokenAuth
// @Param        search     query     string  false  "Substring of invoice number, cashier or payment method"
// @Param        storeId    query     string  false  "Store id or \"all\""
// @Param        regionId   query     string  false  "Region id or \"all\""
// @Param        startDate  query     string  false  "YYYY-MM-DD"
// @Param        endDate    query     string  false  "YYYY-MM-DD"
// @Success      200        {file}    file
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/transactions/export [get]
func (h *TransactionHandler) Export(c echo.Context) error {
	crit, _, err := listingQuery(c)
	if err != nil {
		return err
	}

	report, err := h.service.ExportDetails(c.Request().Context(), crit)
	if err != nil {
		return err
	}
	return attachment(c, report)
}

// SummaryExport handles GET /api/transactions/summary-export.
//
// @Summary      Export daily sales per store by payment method
// @Tags         transactions
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     TokenAuth
// @Param        storeId    query     string  false  "Store id or \"all\""
// @Param        startDate  query     string  true   "YYYY-MM-DD"
// @Param        endDate    query     string  true   "YYYY-MM-DD"
// @Success      200        {file}    file
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/transactions/summary-export [get]
func (h *TransactionHandler) SummaryExport(c echo.Context) error {
	storeID, err := idParam(c, "storeId")
	if err != nil {
		return err
	}
	rng, err := dateRange(c)
	if err != nil {
		return err
	}

	report, err := h.service.ExportSummary(c.Request().Context(), storeID, rng)
	if err != nil {
		return err
	}
	return attachment(c, report)
}

func attachment(c echo.Context, r *ports.Report) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", r.Filename))
	return c.Blob(http.StatusOK, MIMESpreadsheet, r.Content)
}
