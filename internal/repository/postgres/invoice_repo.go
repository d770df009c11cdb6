package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"factura/internal/domain"
	"factura/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const insertInvoiceQuery = `INSERT INTO invoices (
	id, user_id, invoice_name, invoice_number, invoice_date, due_date, currency,
	sender_name, sender_email, sender_phone, sender_address,
	client_name, client_email, client_phone, client_address,
	tax_rate, discount_type, discount_value,
	subtotal, tax_amount, discount_amount, total,
	notes, payment_instructions, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`

const insertLineQuery = `INSERT INTO line_items
	(id, invoice_id, description, quantity, rate, amount, position, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice, lines []domain.InvoiceLine) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertInvoiceQuery,
		inv.ID, inv.UserID, inv.InvoiceName, inv.InvoiceNumber, inv.InvoiceDate, inv.DueDate, inv.Currency,
		inv.SenderName, inv.SenderEmail, inv.SenderPhone, inv.SenderAddress,
		inv.ClientName, inv.ClientEmail, inv.ClientPhone, inv.ClientAddress,
		inv.TaxRate, inv.DiscountType, inv.DiscountValue,
		inv.Subtotal, inv.TaxAmount, inv.DiscountAmount, inv.Total,
		inv.Notes, inv.PaymentInstructions, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := insertLines(ctx, tx, inv.ID, lines, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func insertLines(ctx context.Context, tx *sqlx.Tx, invoiceID uuid.UUID, lines []domain.InvoiceLine, now time.Time) error {
	for i := range lines {
		line := &lines[i]
		line.InvoiceID = invoiceID
		line.Position = i
		line.CreatedAt = now
		_, err := tx.ExecContext(ctx, insertLineQuery,
			line.ID, line.InvoiceID, line.Description, line.Quantity, line.Rate,
			line.Amount, line.Position, line.CreatedAt)
		if err != nil {
			return fmt.Errorf("invoiceRepo inserting line %d: %w", i, err)
		}
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND user_id = $2", invoiceID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) GetLines(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLine, error) {
	var lines []domain.InvoiceLine
	err := r.db.SelectContext(ctx, &lines,
		"SELECT * FROM line_items WHERE invoice_id = $1 ORDER BY position ASC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetLines: %w", err)
	}
	return lines, nil
}

func (r *invoiceRepo) List(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]domain.Invoice, int, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}

	if search := strings.TrimSpace(filters.Search); search != "" {
		where += " AND (invoice_name ILIKE $2 OR invoice_number ILIKE $2 OR client_name ILIKE $2)"
		args = append(args, "%"+search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	sortBy := filters.SortBy
	if !domain.ValidInvoiceSorts[sortBy] {
		sortBy = domain.SortCreatedAt
	}
	direction := "ASC"
	if filters.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf("SELECT * FROM invoices %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		where, sortBy, direction, len(args)+1, len(args)+2)
	args = append(args, filters.Limit, filters.Offset)

	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice, lines []domain.InvoiceLine) error {
	now := time.Now().UTC()
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE invoices SET
		invoice_name = $1, invoice_number = $2, invoice_date = $3, due_date = $4, currency = $5,
		sender_name = $6, sender_email = $7, sender_phone = $8, sender_address = $9,
		client_name = $10, client_email = $11, client_phone = $12, client_address = $13,
		tax_rate = $14, discount_type = $15, discount_value = $16,
		subtotal = $17, tax_amount = $18, discount_amount = $19, total = $20,
		notes = $21, payment_instructions = $22, updated_at = $23
		WHERE id = $24 AND user_id = $25`

	result, err := tx.ExecContext(ctx, query,
		inv.InvoiceName, inv.InvoiceNumber, inv.InvoiceDate, inv.DueDate, inv.Currency,
		inv.SenderName, inv.SenderEmail, inv.SenderPhone, inv.SenderAddress,
		inv.ClientName, inv.ClientEmail, inv.ClientPhone, inv.ClientAddress,
		inv.TaxRate, inv.DiscountType, inv.DiscountValue,
		inv.Subtotal, inv.TaxAmount, inv.DiscountAmount, inv.Total,
		inv.Notes, inv.PaymentInstructions, inv.UpdatedAt,
		inv.ID, inv.UserID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	// Line items are replaced wholesale on every update.
	if _, err := tx.ExecContext(ctx, "DELETE FROM line_items WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("invoiceRepo.Update clearing lines: %w", err)
	}
	if err := insertLines(ctx, tx, inv.ID, lines, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, userID, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoices WHERE id = $1 AND user_id = $2", invoiceID, userID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
