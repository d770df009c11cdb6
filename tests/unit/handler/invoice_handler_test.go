package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"factura/internal/domain"
	"factura/internal/handler"
	"factura/internal/invoice"
	"factura/internal/middleware"
	"factura/internal/service"
	"factura/mocks"
)

func authedContext(w *httptest.ResponseRecorder, userID uuid.UUID) (*gin.Context, *gin.Engine) {
	c, r := gin.CreateTestContext(w)
	c.Set(middleware.ContextKeyUserID, userID)
	return c, r
}

func validSaveInvoiceBody() map[string]interface{} {
	return map[string]interface{}{
		"invoice_name":   "Website redesign",
		"invoice_number": "INV-1001",
		"invoice_date":   "2025-01-05",
		"due_date":       "2025-02-04",
		"currency":       "USD",
		"sender":         map[string]string{"name": "Studio"},
		"client":         map[string]string{"name": "Acme Corp"},
		"line_items": []map[string]interface{}{
			{"id": "line-1", "description": "Design", "quantity": 10, "rate": 15},
		},
		"tax_rate": 10,
		"discount": map[string]interface{}{"type": "percentage", "value": 5},
	}
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	userID := uuid.New()
	created := &domain.InvoiceWithLines{Invoice: domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-1001"}}
	mockInvoice.On("Create", mock.Anything, userID, mock.AnythingOfType("service.SaveInvoiceInput")).
		Return(created, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	postJSON(c, "/api/v1/invoices", validSaveInvoiceBody())

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockInvoice.AssertExpectations(t)
}

func TestInvoiceHandler_Create_RejectsBadDiscountType(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	body := validSaveInvoiceBody()
	body["discount"] = map[string]interface{}{"type": "bogus", "value": 5}

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	postJSON(c, "/api/v1/invoices", body)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockInvoice.AssertNotCalled(t, "Create")
}

func TestInvoiceHandler_Create_DuplicateNumber(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	mockInvoice.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("service.SaveInvoiceInput")).
		Return(nil, domain.ErrDuplicateInvoiceNumber)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	postJSON(c, "/api/v1/invoices", validSaveInvoiceBody())

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_INVOICE_NUMBER", resp.Error.Code)
}

func TestInvoiceHandler_List_DefaultsAndWhitelist(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	userID := uuid.New()
	mockInvoice.On("List", mock.Anything, userID, mock.MatchedBy(func(f domain.InvoiceListFilters) bool {
		// Unknown sort column falls back to created_at; limit is clamped.
		return f.SortBy == domain.SortCreatedAt && f.SortDesc && f.Limit == 20 && f.Offset == 0
	})).Return([]domain.Invoice{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices?sort_by=password_hash&limit=9999", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockInvoice.AssertExpectations(t)
}

func TestInvoiceHandler_List_SearchAndSort(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	userID := uuid.New()
	mockInvoice.On("List", mock.Anything, userID, domain.InvoiceListFilters{
		Search:   "acme",
		SortBy:   domain.SortTotal,
		SortDesc: false,
		Offset:   40,
		Limit:    20,
	}).Return([]domain.Invoice{{ID: uuid.New()}}, 41, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/invoices?search=acme&sort_by=total&order=asc&offset=40&limit=20", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 41, resp.Meta.Total)
}

func TestInvoiceHandler_GetByID_InvalidUUID(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockInvoice.AssertNotCalled(t, "GetByID")
}

func TestInvoiceHandler_GetByID_NotFound(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	userID := uuid.New()
	invoiceID := uuid.New()
	mockInvoice.On("GetByID", mock.Anything, userID, invoiceID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_Defaults(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	mockInvoice.On("Defaults").Return(service.NewInvoiceDefaults{
		InvoiceNumber: "INV-78400000",
		InvoiceDate:   "2025-01-05",
		DueDate:       "2025-02-04",
		Currency:      invoice.CurrencyUSD,
		Currencies:    invoice.SupportedCurrencies(),
	})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/defaults", http.NoBody)

	h.Defaults(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockInvoice.AssertExpectations(t)
}

func TestInvoiceHandler_Delete_Success(t *testing.T) {
	mockInvoice := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockInvoice, new(mocks.MockExportService))

	userID := uuid.New()
	invoiceID := uuid.New()
	mockInvoice.On("Delete", mock.Anything, userID, invoiceID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockInvoice.AssertExpectations(t)
}

func TestInvoiceHandler_DownloadPDF(t *testing.T) {
	mockExport := new(mocks.MockExportService)
	h := handler.NewInvoiceHandler(new(mocks.MockInvoiceService), mockExport)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockExport.On("RenderPDF", mock.Anything, userID, invoiceID).
		Return([]byte("%PDF-1.3 fake"), "INV-1001.pdf", nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID.String()+"/pdf", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.DownloadPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "INV-1001.pdf")
}

func TestInvoiceHandler_Export(t *testing.T) {
	mockExport := new(mocks.MockExportService)
	h := handler.NewInvoiceHandler(new(mocks.MockInvoiceService), mockExport)

	userID := uuid.New()
	mockExport.On("ExportXLSX", mock.Anything, userID, mock.AnythingOfType("domain.InvoiceListFilters")).
		Return([]byte{0x50, 0x4b, 0x03, 0x04}, "invoices.xlsx", nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/export", http.NoBody)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoices.xlsx")
}

func TestInvoiceHandler_ArchivePDF(t *testing.T) {
	mockExport := new(mocks.MockExportService)
	h := handler.NewInvoiceHandler(new(mocks.MockInvoiceService), mockExport)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockExport.On("ArchivePDF", mock.Anything, userID, invoiceID).Return(&service.ArchiveOutput{
		Bucket:       "factura-exports",
		Key:          "exports/x/y.pdf",
		PresignedURL: "https://s3.test/presigned",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID.String()+"/pdf/archive", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.ArchivePDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockExport.AssertExpectations(t)
}
