package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"factura/internal/domain"
)

// MockShareRepo is a mock implementation of port.ShareRepository.
type MockShareRepo struct {
	mock.Mock
}

func (m *MockShareRepo) Create(ctx context.Context, share *domain.InvoiceShare) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockShareRepo) GetByID(ctx context.Context, createdBy, shareID uuid.UUID) (*domain.InvoiceShare, error) {
	args := m.Called(ctx, createdBy, shareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceShare), args.Error(1)
}

func (m *MockShareRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceShare, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceShare), args.Error(1)
}

func (m *MockShareRepo) Revoke(ctx context.Context, createdBy, shareID uuid.UUID) error {
	args := m.Called(ctx, createdBy, shareID)
	return args.Error(0)
}

func (m *MockShareRepo) Delete(ctx context.Context, createdBy, shareID uuid.UUID) error {
	args := m.Called(ctx, createdBy, shareID)
	return args.Error(0)
}

func (m *MockShareRepo) GetActiveByToken(ctx context.Context, token string) (*domain.InvoiceShare, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceShare), args.Error(1)
}

func (m *MockShareRepo) GetInvoiceForShare(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
