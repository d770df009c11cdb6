package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"factura/internal/domain"
	"factura/internal/port"
)

type shareRepo struct {
	db *sqlx.DB
}

// NewShareRepo creates a new PostgreSQL-backed ShareRepository.
func NewShareRepo(db *sqlx.DB) port.ShareRepository {
	return &shareRepo{db: db}
}

func (r *shareRepo) Create(ctx context.Context, share *domain.InvoiceShare) error {
	share.ID = uuid.New()
	share.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoice_shares (id, invoice_id, share_token, created_by, is_active, view_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		share.ID, share.InvoiceID, share.ShareToken, share.CreatedBy,
		share.IsActive, share.ViewCount, share.CreatedAt)
	if err != nil {
		return fmt.Errorf("shareRepo.Create: %w", err)
	}
	return nil
}

func (r *shareRepo) GetByID(ctx context.Context, createdBy, shareID uuid.UUID) (*domain.InvoiceShare, error) {
	var share domain.InvoiceShare
	err := r.db.GetContext(ctx, &share,
		"SELECT * FROM invoice_shares WHERE id = $1 AND created_by = $2", shareID, createdBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shareRepo.GetByID: %w", err)
	}
	return &share, nil
}

func (r *shareRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceShare, error) {
	var shares []domain.InvoiceShare
	err := r.db.SelectContext(ctx, &shares,
		"SELECT * FROM invoice_shares WHERE invoice_id = $1 ORDER BY created_at DESC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("shareRepo.ListByInvoice: %w", err)
	}
	return shares, nil
}

func (r *shareRepo) Revoke(ctx context.Context, createdBy, shareID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoice_shares SET is_active = false WHERE id = $1 AND created_by = $2",
		shareID, createdBy)
	if err != nil {
		return fmt.Errorf("shareRepo.Revoke: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *shareRepo) Delete(ctx context.Context, createdBy, shareID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoice_shares WHERE id = $1 AND created_by = $2", shareID, createdBy)
	if err != nil {
		return fmt.Errorf("shareRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *shareRepo) GetActiveByToken(ctx context.Context, token string) (*domain.InvoiceShare, error) {
	// Resolving a share counts as a view; bump the counter in the same
	// statement so concurrent viewers never lose increments.
	var share domain.InvoiceShare
	err := r.db.GetContext(ctx, &share, `
		UPDATE invoice_shares
		SET view_count = view_count + 1, last_viewed_at = NOW()
		WHERE share_token = $1 AND is_active = true
		RETURNING *`,
		token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShareNotFound
		}
		return nil, fmt.Errorf("shareRepo.GetActiveByToken: %w", err)
	}
	return &share, nil
}

func (r *shareRepo) GetInvoiceForShare(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shareRepo.GetInvoiceForShare: %w", err)
	}
	return &inv, nil
}
