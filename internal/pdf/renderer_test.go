package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factura/internal/domain"
	"factura/internal/invoice"
	"factura/internal/pdf"
)

func sampleInvoice() *domain.InvoiceWithLines {
	return &domain.InvoiceWithLines{
		Invoice: domain.Invoice{
			InvoiceName:   "Website redesign",
			InvoiceNumber: "INV-1001",
			InvoiceDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
			Currency:      invoice.CurrencyUSD,
			SenderName:    "Studio",
			SenderEmail:   "studio@test.com",
			ClientName:    "Acme Corp",
			TaxRate:       10,
			Subtotal:      187.5,
			TaxAmount:     18.75,
			Total:         206.25,
			Notes:         "Thanks for your business.",
		},
		LineItems: []domain.InvoiceLine{
			{ID: "line-1", Description: "Design", Quantity: 10, Rate: 15, Amount: 150},
			{ID: "line-2", Description: "Hosting", Quantity: 1, Rate: 37.5, Amount: 37.5},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	r := pdf.NewRenderer(invoice.DefaultSymbols())

	data, err := r.Render(sampleInvoice())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}

func TestRenderer_Render_EmptyInvoice(t *testing.T) {
	r := pdf.NewRenderer(invoice.DefaultSymbols())

	inv := sampleInvoice()
	inv.LineItems = nil
	inv.TaxAmount = 0
	inv.DiscountAmount = 0
	inv.Notes = ""

	data, err := r.Render(inv)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
