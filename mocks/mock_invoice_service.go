package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"factura/internal/domain"
	"factura/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, userID uuid.UUID, input service.SaveInvoiceInput) (*domain.InvoiceWithLines, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithLines), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.InvoiceWithLines, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithLines), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) Update(ctx context.Context, userID, invoiceID uuid.UUID, input service.SaveInvoiceInput) (*domain.InvoiceWithLines, error) {
	args := m.Called(ctx, userID, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithLines), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, userID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, userID, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceService) Defaults() service.NewInvoiceDefaults {
	args := m.Called()
	return args.Get(0).(service.NewInvoiceDefaults)
}
