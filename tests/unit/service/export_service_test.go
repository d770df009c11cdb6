package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"factura/internal/config"
	"factura/internal/domain"
	"factura/internal/invoice"
	"factura/internal/pdf"
	"factura/internal/port"
	"factura/internal/service"
	"factura/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "factura-test",
		PresignExpiry: 3600,
	}
}

func testInvoice(userID, invoiceID uuid.UUID) *domain.Invoice {
	return &domain.Invoice{
		ID:            invoiceID,
		UserID:        userID,
		InvoiceName:   "Website redesign",
		InvoiceNumber: "INV-1001",
		InvoiceDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
		Currency:      invoice.CurrencyUSD,
		SenderName:    "Studio",
		ClientName:    "Acme Corp",
		TaxRate:       10,
		Subtotal:      187.5,
		TaxAmount:     18.75,
		Total:         206.25,
	}
}

func newExportService(invoiceRepo *mocks.MockInvoiceRepo, storage *mocks.MockObjectStorage) service.ExportService {
	symbols := invoice.DefaultSymbols()
	return service.NewExportService(invoiceRepo, pdf.NewRenderer(symbols), storage, symbols, testS3Config())
}

func TestExportService_RenderPDF(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newExportService(invoiceRepo, new(mocks.MockObjectStorage))

	userID := uuid.New()
	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(testInvoice(userID, invoiceID), nil)
	invoiceRepo.On("GetLines", mock.Anything, invoiceID).Return([]domain.InvoiceLine{
		{ID: "line-1", Description: "Design", Quantity: 10, Rate: 15, Amount: 150},
		{ID: "line-2", Description: "Hosting", Quantity: 1, Rate: 37.5, Amount: 37.5},
	}, nil)

	data, filename, err := svc.RenderPDF(context.Background(), userID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, "INV-1001.pdf", filename)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportService_RenderPDF_NotFound(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newExportService(invoiceRepo, new(mocks.MockObjectStorage))

	userID := uuid.New()
	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(nil, domain.ErrNotFound)

	data, _, err := svc.RenderPDF(context.Background(), userID, invoiceID)

	assert.Nil(t, data)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_ArchivePDF(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newExportService(invoiceRepo, storage)

	userID := uuid.New()
	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(testInvoice(userID, invoiceID), nil)
	invoiceRepo.On("GetLines", mock.Anything, invoiceID).Return([]domain.InvoiceLine{}, nil)

	expectedKey := "exports/" + userID.String() + "/" + invoiceID.String() + ".pdf"
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "factura-test" && in.Key == expectedKey && in.ContentType == "application/pdf"
	})).Return(&port.UploadOutput{Location: "s3://factura-test/" + expectedKey}, nil)
	storage.On("GetPresignedURL", mock.Anything, "factura-test", expectedKey, int64(3600)).
		Return("https://s3.test/presigned", nil)

	out, err := svc.ArchivePDF(context.Background(), userID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, expectedKey, out.Key)
	assert.Equal(t, "https://s3.test/presigned", out.PresignedURL)
	storage.AssertExpectations(t)
}

func TestExportService_ExportXLSX_CapsPagination(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newExportService(invoiceRepo, new(mocks.MockObjectStorage))

	userID := uuid.New()
	invoiceRepo.On("List", mock.Anything, userID, mock.MatchedBy(func(f domain.InvoiceListFilters) bool {
		return f.Offset == 0 && f.Limit == 10000
	})).Return([]domain.Invoice{*testInvoice(userID, uuid.New())}, 1, nil)

	data, filename, err := svc.ExportXLSX(context.Background(), userID, domain.InvoiceListFilters{Offset: 40, Limit: 20})

	assert.NoError(t, err)
	assert.Equal(t, "invoices.xlsx", filename)
	assert.NotEmpty(t, data)
	invoiceRepo.AssertExpectations(t)
}
