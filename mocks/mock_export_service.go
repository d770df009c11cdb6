package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"factura/internal/domain"
	"factura/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) RenderPDF(ctx context.Context, userID, invoiceID uuid.UUID) ([]byte, string, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockExportService) ArchivePDF(ctx context.Context, userID, invoiceID uuid.UUID) (*service.ArchiveOutput, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveOutput), args.Error(1)
}

func (m *MockExportService) ExportXLSX(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]byte, string, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
