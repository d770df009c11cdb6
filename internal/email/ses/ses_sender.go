package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"factura/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceEmail(ctx context.Context, email port.InvoiceEmail) error {
	subject := fmt.Sprintf("Invoice %s from %s", email.InvoiceNumber, email.SenderName)
	htmlBody := buildInvoiceHTML(email)
	textBody := buildInvoiceText(email)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{email.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInvoiceText(email port.InvoiceEmail) string {
	msg := ""
	if email.Message != "" {
		msg = email.Message + "\n\n"
	}
	return fmt.Sprintf(
		"Hi %s,\n\n%s%s has sent you invoice %s for %s, due %s.\n\nView and download it here:\n%s\n\nFactura",
		email.ToName, msg, email.SenderName, email.InvoiceNumber, email.TotalDisplay, email.DueDate, email.ShareURL,
	)
}

func buildInvoiceHTML(email port.InvoiceEmail) string {
	msgBlock := ""
	if email.Message != "" {
		msgBlock = fmt.Sprintf(`<p style="background: #f9fafb; padding: 12px; border-radius: 6px; color: #444;">%s</p>`, email.Message)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Hi %s,</p>
  %s
  <p>%s has sent you an invoice for <strong>%s</strong>, due <strong>%s</strong>.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Invoice</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Factura - Invoicing</p>
</body>
</html>`, email.InvoiceNumber, email.ToName, msgBlock, email.SenderName, email.TotalDisplay, email.DueDate, email.ShareURL, email.ShareURL)
}
