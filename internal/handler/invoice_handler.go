package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"factura/internal/domain"
	"factura/internal/service"
)

// InvoiceHandler handles invoice management endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	exportService  service.ExportService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, exportService service.ExportService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, exportService: exportService}
}

// Defaults handles GET /api/v1/invoices/defaults
// @Summary New invoice defaults
// @Description Return generated invoice number, dates and supported currencies for a fresh invoice form
// @Tags invoices
// @Produce json
// @Success 200 {object} Response{data=service.NewInvoiceDefaults} "Prefill values"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices/defaults [get]
func (h *InvoiceHandler) Defaults(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	RespondOK(c, h.invoiceService.Defaults())
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Create an invoice; line amounts and totals are computed server-side
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.SaveInvoiceInput true "Invoice details"
// @Success 201 {object} Response{data=domain.InvoiceWithLines} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var input service.SaveInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description List the user's invoices with search, sorting and pagination
// @Tags invoices
// @Produce json
// @Param search query string false "Match against invoice name, number or client name"
// @Param sort_by query string false "Sort column" Enums(created_at, invoice_date, invoice_name, invoice_number, total) default(created_at)
// @Param order query string false "Sort order" Enums(asc, desc) default(desc)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta} "List of invoices"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	filters := parseListFilters(c)
	invoices, total, err := h.invoiceService.List(c.Request.Context(), userID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Description Return an invoice with its line items
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.InvoiceWithLines} "Invoice"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), userID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Update handles PUT /api/v1/invoices/:id
// @Summary Update an invoice
// @Description Replace an invoice and its line items; totals are recomputed server-side
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body service.SaveInvoiceInput true "Invoice details"
// @Success 200 {object} Response{data=domain.InvoiceWithLines} "Invoice updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Failure 409 {object} ErrorResponseBody "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input service.SaveInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Update(c.Request.Context(), userID, invoiceID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Delete handles DELETE /api/v1/invoices/:id
// @Summary Delete an invoice
// @Description Delete an invoice and its line items and shares
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=MessageResponse} "Invoice deleted"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), userID, invoiceID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice deleted"})
}

// Export handles GET /api/v1/invoices/export
// @Summary Export invoices as a spreadsheet
// @Description Download the user's invoice list as an xlsx workbook
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Match against invoice name, number or client name"
// @Param sort_by query string false "Sort column" Enums(created_at, invoice_date, invoice_name, invoice_number, total) default(created_at)
// @Param order query string false "Sort order" Enums(asc, desc) default(desc)
// @Success 200 {file} binary "Workbook"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.ExportXLSX(c.Request.Context(), userID, parseListFilters(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// DownloadPDF handles GET /api/v1/invoices/:id/pdf
// @Summary Download invoice PDF
// @Description Render the invoice as a PDF document
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary "PDF document"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.RenderPDF(c.Request.Context(), userID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ArchivePDF handles POST /api/v1/invoices/:id/pdf/archive
// @Summary Archive invoice PDF
// @Description Render the invoice PDF, store it in object storage and return a presigned URL
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=service.ArchiveOutput} "Archived PDF"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /invoices/{id}/pdf/archive [post]
func (h *InvoiceHandler) ArchivePDF(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	out, err := h.exportService.ArchivePDF(c.Request.Context(), userID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// parseListFilters reads search, sort and pagination query parameters.
func parseListFilters(c *gin.Context) domain.InvoiceListFilters {
	sortBy := c.DefaultQuery("sort_by", string(domain.SortCreatedAt))
	if !domain.ValidInvoiceSorts[domain.InvoiceSort(sortBy)] {
		sortBy = string(domain.SortCreatedAt)
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	return domain.InvoiceListFilters{
		Search:   c.Query("search"),
		SortBy:   domain.InvoiceSort(sortBy),
		SortDesc: c.DefaultQuery("order", "desc") != "asc",
		Offset:   offset,
		Limit:    limit,
	}
}

// parseIDParam parses the :id path parameter as a UUID.
// Returns false if invalid (error response already written).
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
