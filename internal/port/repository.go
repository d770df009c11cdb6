package port

import (
	"context"

	"github.com/google/uuid"

	"factura/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// InvoiceRepository defines the contract for invoice persistence. All query
// methods take the owning userID so ownership is enforced at the data layer.
type InvoiceRepository interface {
	// Create inserts the invoice and its line items in one transaction.
	Create(ctx context.Context, inv *domain.Invoice, lines []domain.InvoiceLine) error
	GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.Invoice, error)
	// GetLines returns an invoice's line items in display order.
	GetLines(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLine, error)
	List(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]domain.Invoice, int, error)
	// Update rewrites the invoice row and replaces its line items wholesale.
	Update(ctx context.Context, inv *domain.Invoice, lines []domain.InvoiceLine) error
	Delete(ctx context.Context, userID, invoiceID uuid.UUID) error
}

// ShareRepository defines the contract for invoice share link persistence.
type ShareRepository interface {
	Create(ctx context.Context, share *domain.InvoiceShare) error
	GetByID(ctx context.Context, createdBy, shareID uuid.UUID) (*domain.InvoiceShare, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceShare, error)
	Revoke(ctx context.Context, createdBy, shareID uuid.UUID) error
	Delete(ctx context.Context, createdBy, shareID uuid.UUID) error
	// GetActiveByToken resolves an active share and atomically records the view.
	GetActiveByToken(ctx context.Context, token string) (*domain.InvoiceShare, error)
	// GetInvoiceForShare loads the shared invoice regardless of owner.
	GetInvoiceForShare(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error)
}
