package port

import "context"

// InvoiceEmail carries everything needed to send an invoice to a recipient.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	SenderName    string
	InvoiceNumber string
	TotalDisplay  string
	DueDate       string
	ShareURL      string
	Message       string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, email InvoiceEmail) error
}
