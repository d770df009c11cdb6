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
	"factura/internal/service"
	"factura/mocks"
)

func TestShareHandler_Create_Success(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockShare.On("Create", mock.Anything, userID, invoiceID).Return(&service.ShareOutput{
		Share:    &domain.InvoiceShare{ID: uuid.New(), InvoiceID: invoiceID, ShareToken: "tok", IsActive: true},
		ShareURL: "https://app.factura.test/share/tok",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID.String()+"/shares", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockShare.AssertExpectations(t)
}

func TestShareHandler_Create_InvoiceNotFound(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockShare.On("Create", mock.Anything, userID, invoiceID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID.String()+"/shares", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.Create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShareHandler_Resolve_Success(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	inv := &domain.InvoiceWithLines{Invoice: domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-1001"}}
	mockShare.On("ResolveToken", mock.Anything, "tok").Return(inv, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/shared/tok", http.NoBody)
	c.Params = gin.Params{{Key: "token", Value: "tok"}}

	h.Resolve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestShareHandler_Resolve_RevokedToken(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	mockShare.On("ResolveToken", mock.Anything, "revoked").Return(nil, domain.ErrShareNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/shared/revoked", http.NoBody)
	c.Params = gin.Params{{Key: "token", Value: "revoked"}}

	h.Resolve(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SHARE_NOT_FOUND", resp.Error.Code)
}

func TestShareHandler_Revoke_Success(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	userID := uuid.New()
	shareID := uuid.New()
	mockShare.On("Revoke", mock.Anything, userID, shareID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/shares/"+shareID.String()+"/revoke", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: shareID.String()}}

	h.Revoke(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockShare.AssertExpectations(t)
}

func TestShareHandler_Send_Success(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockShare.On("SendInvoice", mock.Anything, userID, invoiceID, service.SendInvoiceInput{
		ToEmail: "client@acme.test",
		Message: "Here you go",
	}).Return(&service.ShareOutput{ShareURL: "https://app.factura.test/share/tok"}, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	postJSON(c, "/api/v1/invoices/"+invoiceID.String()+"/send", map[string]string{
		"to_email": "client@acme.test",
		"message":  "Here you go",
	})
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockShare.AssertExpectations(t)
}

func TestShareHandler_Send_InvalidEmail(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	invoiceID := uuid.New()
	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	postJSON(c, "/api/v1/invoices/"+invoiceID.String()+"/send", map[string]string{
		"to_email": "not-an-email",
	})
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockShare.AssertNotCalled(t, "SendInvoice")
}

func TestShareHandler_ListByInvoice_Success(t *testing.T) {
	mockShare := new(mocks.MockShareService)
	h := handler.NewShareHandler(mockShare)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockShare.On("ListByInvoice", mock.Anything, userID, invoiceID).Return([]domain.InvoiceShare{
		{ID: uuid.New(), InvoiceID: invoiceID, IsActive: true},
		{ID: uuid.New(), InvoiceID: invoiceID, IsActive: false},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID.String()+"/shares", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.ListByInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockShare.AssertExpectations(t)
}
