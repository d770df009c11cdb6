package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"factura/internal/domain"
	"factura/internal/invoice"
	"factura/internal/port"
)

// PartyInput is the DTO for one side of an invoice. All fields are free text.
type PartyInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItemInput is the DTO for a single line item. Amount is intentionally
// absent: it is always derived server-side from quantity and rate.
type LineItemInput struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// DiscountInput is the DTO for the invoice discount.
type DiscountInput struct {
	Type  invoice.DiscountType `json:"type" binding:"required,oneof=percentage fixed"`
	Value float64              `json:"value"`
}

// SaveInvoiceInput is the DTO for creating or updating an invoice. Financial
// values are deliberately not range-validated; the engine is permissive by
// contract and negative totals are legal.
type SaveInvoiceInput struct {
	InvoiceName         string          `json:"invoice_name" binding:"required"`
	InvoiceNumber       string          `json:"invoice_number" binding:"required"`
	InvoiceDate         string          `json:"invoice_date" binding:"required"`
	DueDate             string          `json:"due_date" binding:"required"`
	Currency            string          `json:"currency"`
	Sender              PartyInput      `json:"sender"`
	Client              PartyInput      `json:"client"`
	LineItems           []LineItemInput `json:"line_items"`
	TaxRate             float64         `json:"tax_rate"`
	Discount            DiscountInput   `json:"discount"`
	Notes               string          `json:"notes"`
	PaymentInstructions string          `json:"payment_instructions"`
}

// NewInvoiceDefaults holds prefill values for a fresh invoice form.
type NewInvoiceDefaults struct {
	InvoiceNumber string                 `json:"invoice_number"`
	InvoiceDate   string                 `json:"invoice_date"`
	DueDate       string                 `json:"due_date"`
	Currency      invoice.CurrencyCode   `json:"currency"`
	LineItemID    string                 `json:"line_item_id"`
	Currencies    []invoice.CurrencyCode `json:"currencies"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, userID uuid.UUID, input SaveInvoiceInput) (*domain.InvoiceWithLines, error)
	GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.InvoiceWithLines, error)
	List(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]domain.Invoice, int, error)
	Update(ctx context.Context, userID, invoiceID uuid.UUID, input SaveInvoiceInput) (*domain.InvoiceWithLines, error)
	Delete(ctx context.Context, userID, invoiceID uuid.UUID) error
	Defaults() NewInvoiceDefaults
}

type invoiceService struct {
	repo port.InvoiceRepository
	gen  *invoice.Generator
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository, gen *invoice.Generator) InvoiceService {
	return &invoiceService{repo: repo, gen: gen}
}

func (s *invoiceService) Create(ctx context.Context, userID uuid.UUID, input SaveInvoiceInput) (*domain.InvoiceWithLines, error) {
	inv, lines, err := s.buildInvoice(userID, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, inv, lines); err != nil {
		return nil, err
	}
	return &domain.InvoiceWithLines{Invoice: *inv, LineItems: lines}, nil
}

func (s *invoiceService) GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.InvoiceWithLines, error) {
	inv, err := s.repo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.GetLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceWithLines{Invoice: *inv, LineItems: lines}, nil
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]domain.Invoice, int, error) {
	return s.repo.List(ctx, userID, filters)
}

func (s *invoiceService) Update(ctx context.Context, userID, invoiceID uuid.UUID, input SaveInvoiceInput) (*domain.InvoiceWithLines, error) {
	existing, err := s.repo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	inv, lines, err := s.buildInvoice(userID, input)
	if err != nil {
		return nil, err
	}
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, inv, lines); err != nil {
		return nil, err
	}
	return &domain.InvoiceWithLines{Invoice: *inv, LineItems: lines}, nil
}

func (s *invoiceService) Delete(ctx context.Context, userID, invoiceID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, invoiceID)
}

func (s *invoiceService) Defaults() NewInvoiceDefaults {
	return NewInvoiceDefaults{
		InvoiceNumber: s.gen.InvoiceNumber(),
		InvoiceDate:   s.gen.TodayDate(),
		DueDate:       s.gen.DefaultDueDate(),
		Currency:      invoice.CurrencyUSD,
		LineItemID:    s.gen.LineItemID(),
		Currencies:    invoice.SupportedCurrencies(),
	}
}

// buildInvoice turns the request DTO into a persistable invoice. Line amounts
// and totals are never taken from the client: each amount is re-derived from
// quantity and rate, and the stored totals are whatever the engine computes
// from the resulting snapshot.
func (s *invoiceService) buildInvoice(userID uuid.UUID, input SaveInvoiceInput) (*domain.Invoice, []domain.InvoiceLine, error) {
	invoiceDate, err := time.Parse("2006-01-02", input.InvoiceDate)
	if err != nil {
		return nil, nil, domain.ErrInvalidDate
	}
	dueDate, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		return nil, nil, domain.ErrInvalidDate
	}

	currency := invoice.CurrencyCode(input.Currency)
	if currency == "" {
		currency = invoice.CurrencyUSD
	}

	snapshot := &invoice.Snapshot{
		InvoiceNumber: input.InvoiceNumber,
		InvoiceDate:   input.InvoiceDate,
		DueDate:       input.DueDate,
		Currency:      currency,
		TaxRate:       input.TaxRate,
		Discount:      invoice.Discount{Type: input.Discount.Type, Value: input.Discount.Value},
	}

	lines := make([]domain.InvoiceLine, len(input.LineItems))
	for i, item := range input.LineItems {
		id := item.ID
		if id == "" {
			id = s.gen.LineItemID()
		}
		amount := invoice.LineItemAmount(item.Quantity, item.Rate)
		snapshot.LineItems = append(snapshot.LineItems, invoice.LineItem{
			ID:          id,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      amount,
		})
		lines[i] = domain.InvoiceLine{
			ID:          id,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      amount,
		}
	}

	totals := invoice.CalculateTotals(snapshot)

	inv := &domain.Invoice{
		UserID:              userID,
		InvoiceName:         input.InvoiceName,
		InvoiceNumber:       input.InvoiceNumber,
		InvoiceDate:         invoiceDate,
		DueDate:             dueDate,
		Currency:            currency,
		SenderName:          input.Sender.Name,
		SenderEmail:         input.Sender.Email,
		SenderPhone:         input.Sender.Phone,
		SenderAddress:       input.Sender.Address,
		ClientName:          input.Client.Name,
		ClientEmail:         input.Client.Email,
		ClientPhone:         input.Client.Phone,
		ClientAddress:       input.Client.Address,
		TaxRate:             input.TaxRate,
		DiscountType:        input.Discount.Type,
		DiscountValue:       input.Discount.Value,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.TaxAmount,
		DiscountAmount:      totals.DiscountAmount,
		Total:               totals.Total,
		Notes:               input.Notes,
		PaymentInstructions: input.PaymentInstructions,
	}
	return inv, lines, nil
}
