package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"factura/internal/config"
	"factura/internal/domain"
	"factura/internal/invoice"
	"factura/internal/pdf"
	"factura/internal/port"
	"factura/internal/xlsxexport"
)

// exportListLimit caps the spreadsheet export at one page of this size.
const exportListLimit = 10000

// ArchiveOutput describes an archived PDF in object storage.
type ArchiveOutput struct {
	Bucket       string `json:"bucket"`
	Key          string `json:"key"`
	PresignedURL string `json:"presigned_url"`
}

// ExportService defines PDF and spreadsheet export operations.
type ExportService interface {
	// RenderPDF returns the PDF bytes for an invoice plus a download filename.
	RenderPDF(ctx context.Context, userID, invoiceID uuid.UUID) ([]byte, string, error)
	// ArchivePDF renders the invoice, stores it in object storage and returns
	// a presigned download URL.
	ArchivePDF(ctx context.Context, userID, invoiceID uuid.UUID) (*ArchiveOutput, error)
	// ExportXLSX returns the user's invoice list as an xlsx workbook.
	ExportXLSX(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]byte, string, error)
}

type exportService struct {
	invoiceRepo port.InvoiceRepository
	renderer    *pdf.Renderer
	storage     port.ObjectStorage
	symbols     invoice.SymbolTable
	s3cfg       config.S3Config
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	invoiceRepo port.InvoiceRepository,
	renderer *pdf.Renderer,
	storage port.ObjectStorage,
	symbols invoice.SymbolTable,
	s3cfg config.S3Config,
) ExportService {
	return &exportService{
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		storage:     storage,
		symbols:     symbols,
		s3cfg:       s3cfg,
	}
}

func (s *exportService) RenderPDF(ctx context.Context, userID, invoiceID uuid.UUID) ([]byte, string, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	lines, err := s.invoiceRepo.GetLines(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(&domain.InvoiceWithLines{Invoice: *inv, LineItems: lines})
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("%s.pdf", inv.InvoiceNumber), nil
}

func (s *exportService) ArchivePDF(ctx context.Context, userID, invoiceID uuid.UUID) (*ArchiveOutput, error) {
	data, filename, err := s.RenderPDF(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s.pdf", userID, invoiceID)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:             s.s3cfg.Bucket,
		Key:                key,
		Body:               bytes.NewReader(data),
		ContentType:        "application/pdf",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
	})
	if err != nil {
		return nil, fmt.Errorf("archiving invoice pdf: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning archived pdf: %w", err)
	}

	return &ArchiveOutput{
		Bucket:       s.s3cfg.Bucket,
		Key:          key,
		PresignedURL: url,
	}, nil
}

func (s *exportService) ExportXLSX(ctx context.Context, userID uuid.UUID, filters domain.InvoiceListFilters) ([]byte, string, error) {
	filters.Offset = 0
	filters.Limit = exportListLimit

	invoices, _, err := s.invoiceRepo.List(ctx, userID, filters)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, invoices, s.symbols); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "invoices.xlsx", nil
}
