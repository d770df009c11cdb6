package domain

import (
	"time"

	"github.com/google/uuid"

	"factura/internal/invoice"
)

// User is an account that owns invoices.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice is a persisted invoice record. Party details are stored flattened,
// and the four total columns are denormalized copies of what the totals
// engine computed from the snapshot that was saved.
type Invoice struct {
	ID                  uuid.UUID            `db:"id" json:"id"`
	UserID              uuid.UUID            `db:"user_id" json:"user_id"`
	InvoiceName         string               `db:"invoice_name" json:"invoice_name"`
	InvoiceNumber       string               `db:"invoice_number" json:"invoice_number"`
	InvoiceDate         time.Time            `db:"invoice_date" json:"invoice_date"`
	DueDate             time.Time            `db:"due_date" json:"due_date"`
	Currency            invoice.CurrencyCode `db:"currency" json:"currency"`
	SenderName          string               `db:"sender_name" json:"sender_name"`
	SenderEmail         string               `db:"sender_email" json:"sender_email"`
	SenderPhone         string               `db:"sender_phone" json:"sender_phone"`
	SenderAddress       string               `db:"sender_address" json:"sender_address"`
	ClientName          string               `db:"client_name" json:"client_name"`
	ClientEmail         string               `db:"client_email" json:"client_email"`
	ClientPhone         string               `db:"client_phone" json:"client_phone"`
	ClientAddress       string               `db:"client_address" json:"client_address"`
	TaxRate             float64              `db:"tax_rate" json:"tax_rate"`
	DiscountType        invoice.DiscountType `db:"discount_type" json:"discount_type"`
	DiscountValue       float64              `db:"discount_value" json:"discount_value"`
	Subtotal            float64              `db:"subtotal" json:"subtotal"`
	TaxAmount           float64              `db:"tax_amount" json:"tax_amount"`
	DiscountAmount      float64              `db:"discount_amount" json:"discount_amount"`
	Total               float64              `db:"total" json:"total"`
	Notes               string               `db:"notes" json:"notes"`
	PaymentInstructions string               `db:"payment_instructions" json:"payment_instructions"`
	CreatedAt           time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `db:"updated_at" json:"updated_at"`
}

// InvoiceLine is one persisted line item. Position preserves display order;
// totals do not depend on it.
type InvoiceLine struct {
	ID          string    `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	Description string    `db:"description" json:"description"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	Rate        float64   `db:"rate" json:"rate"`
	Amount      float64   `db:"amount" json:"amount"`
	Position    int       `db:"position" json:"position"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// InvoiceWithLines is an invoice with its line items attached, ordered by
// position.
type InvoiceWithLines struct {
	Invoice
	LineItems []InvoiceLine `json:"line_items"`
}

// InvoiceShare is a public share link for an invoice.
type InvoiceShare struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	InvoiceID    uuid.UUID  `db:"invoice_id" json:"invoice_id"`
	ShareToken   string     `db:"share_token" json:"share_token"`
	CreatedBy    uuid.UUID  `db:"created_by" json:"created_by"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	ViewCount    int        `db:"view_count" json:"view_count"`
	LastViewedAt *time.Time `db:"last_viewed_at" json:"last_viewed_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Snapshot reconstructs the engine snapshot from a stored invoice and its
// line items. This is the persistence-read half of the engine boundary:
// stored dates become YYYY-MM-DD strings and stored decimals are already
// numeric.
func (inv *Invoice) Snapshot(lines []InvoiceLine) *invoice.Snapshot {
	items := make([]invoice.LineItem, len(lines))
	for i, l := range lines {
		items[i] = invoice.LineItem{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity,
			Rate:        l.Rate,
			Amount:      l.Amount,
		}
	}
	return &invoice.Snapshot{
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Currency:      inv.Currency,
		Sender: invoice.Party{
			Name:    inv.SenderName,
			Email:   inv.SenderEmail,
			Phone:   inv.SenderPhone,
			Address: inv.SenderAddress,
		},
		Client: invoice.Party{
			Name:    inv.ClientName,
			Email:   inv.ClientEmail,
			Phone:   inv.ClientPhone,
			Address: inv.ClientAddress,
		},
		LineItems:           items,
		TaxRate:             inv.TaxRate,
		Discount:            invoice.Discount{Type: inv.DiscountType, Value: inv.DiscountValue},
		Notes:               inv.Notes,
		PaymentInstructions: inv.PaymentInstructions,
	}
}
