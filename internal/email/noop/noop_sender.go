package noop

import (
	"context"
	"log"

	"factura/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs share URLs to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, email port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s (%s, due %s) for %s (%s): %s",
		email.InvoiceNumber, email.TotalDisplay, email.DueDate, email.ToName, email.ToEmail, email.ShareURL)
	return nil
}
