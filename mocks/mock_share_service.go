package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"factura/internal/domain"
	"factura/internal/service"
)

// MockShareService is a mock implementation of service.ShareService.
type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Create(ctx context.Context, userID, invoiceID uuid.UUID) (*service.ShareOutput, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShareOutput), args.Error(1)
}

func (m *MockShareService) ListByInvoice(ctx context.Context, userID, invoiceID uuid.UUID) ([]domain.InvoiceShare, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceShare), args.Error(1)
}

func (m *MockShareService) Revoke(ctx context.Context, userID, shareID uuid.UUID) error {
	args := m.Called(ctx, userID, shareID)
	return args.Error(0)
}

func (m *MockShareService) Delete(ctx context.Context, userID, shareID uuid.UUID) error {
	args := m.Called(ctx, userID, shareID)
	return args.Error(0)
}

func (m *MockShareService) ResolveToken(ctx context.Context, token string) (*domain.InvoiceWithLines, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceWithLines), args.Error(1)
}

func (m *MockShareService) SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID, input service.SendInvoiceInput) (*service.ShareOutput, error) {
	args := m.Called(ctx, userID, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShareOutput), args.Error(1)
}
