package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"factura/internal/domain"
	"factura/internal/invoice"
	"factura/internal/port"
)

// ShareOutput bundles a created share with its public URL.
type ShareOutput struct {
	Share    *domain.InvoiceShare `json:"share"`
	ShareURL string               `json:"share_url"`
}

// SendInvoiceInput is the DTO for emailing an invoice.
type SendInvoiceInput struct {
	ToEmail string `json:"to_email" binding:"required,email"`
	ToName  string `json:"to_name"`
	Message string `json:"message"`
}

// ShareService defines the share link contract.
type ShareService interface {
	Create(ctx context.Context, userID, invoiceID uuid.UUID) (*ShareOutput, error)
	ListByInvoice(ctx context.Context, userID, invoiceID uuid.UUID) ([]domain.InvoiceShare, error)
	Revoke(ctx context.Context, userID, shareID uuid.UUID) error
	Delete(ctx context.Context, userID, shareID uuid.UUID) error
	// ResolveToken is the public read path: no authentication, active shares
	// only, and every call counts as a view.
	ResolveToken(ctx context.Context, token string) (*domain.InvoiceWithLines, error)
	SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID, input SendInvoiceInput) (*ShareOutput, error)
}

type shareService struct {
	shareRepo   port.ShareRepository
	invoiceRepo port.InvoiceRepository
	email       port.EmailSender
	symbols     invoice.SymbolTable
	frontendURL string
}

// NewShareService creates a new ShareService implementation.
func NewShareService(
	shareRepo port.ShareRepository,
	invoiceRepo port.InvoiceRepository,
	email port.EmailSender,
	symbols invoice.SymbolTable,
	frontendURL string,
) ShareService {
	return &shareService{
		shareRepo:   shareRepo,
		invoiceRepo: invoiceRepo,
		email:       email,
		symbols:     symbols,
		frontendURL: frontendURL,
	}
}

func (s *shareService) Create(ctx context.Context, userID, invoiceID uuid.UUID) (*ShareOutput, error) {
	// Ownership check before issuing a token.
	if _, err := s.invoiceRepo.GetByID(ctx, userID, invoiceID); err != nil {
		return nil, err
	}

	token, err := generateShareToken()
	if err != nil {
		return nil, err
	}

	share := &domain.InvoiceShare{
		InvoiceID:  invoiceID,
		ShareToken: token,
		CreatedBy:  userID,
		IsActive:   true,
	}
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	return &ShareOutput{
		Share:    share,
		ShareURL: fmt.Sprintf("%s/share/%s", s.frontendURL, token),
	}, nil
}

func (s *shareService) ListByInvoice(ctx context.Context, userID, invoiceID uuid.UUID) ([]domain.InvoiceShare, error) {
	if _, err := s.invoiceRepo.GetByID(ctx, userID, invoiceID); err != nil {
		return nil, err
	}
	return s.shareRepo.ListByInvoice(ctx, invoiceID)
}

func (s *shareService) Revoke(ctx context.Context, userID, shareID uuid.UUID) error {
	return s.shareRepo.Revoke(ctx, userID, shareID)
}

func (s *shareService) Delete(ctx context.Context, userID, shareID uuid.UUID) error {
	return s.shareRepo.Delete(ctx, userID, shareID)
}

func (s *shareService) ResolveToken(ctx context.Context, token string) (*domain.InvoiceWithLines, error) {
	share, err := s.shareRepo.GetActiveByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	inv, err := s.shareRepo.GetInvoiceForShare(ctx, share.InvoiceID)
	if err != nil {
		return nil, err
	}
	lines, err := s.invoiceRepo.GetLines(ctx, share.InvoiceID)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceWithLines{Invoice: *inv, LineItems: lines}, nil
}

func (s *shareService) SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID, input SendInvoiceInput) (*ShareOutput, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	out, err := s.Create(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	toName := input.ToName
	if toName == "" {
		toName = inv.ClientName
	}

	err = s.email.SendInvoiceEmail(ctx, port.InvoiceEmail{
		ToEmail:       input.ToEmail,
		ToName:        toName,
		SenderName:    inv.SenderName,
		InvoiceNumber: inv.InvoiceNumber,
		TotalDisplay:  invoice.FormatCurrency(inv.Total, inv.Currency, s.symbols),
		DueDate:       invoice.FormatTime(inv.DueDate),
		ShareURL:      out.ShareURL,
		Message:       input.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("sending invoice email: %w", err)
	}
	return out, nil
}

func generateShareToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
