// Package pdf renders invoices as printable PDF documents. All money and
// date strings come from the totals engine's formatters so the PDF always
// matches the on-screen preview.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"factura/internal/domain"
	"factura/internal/invoice"
)

// Renderer draws invoice PDFs with a fixed A4 layout.
type Renderer struct {
	symbols invoice.SymbolTable
}

// NewRenderer creates a Renderer using the given currency symbol table.
func NewRenderer(symbols invoice.SymbolTable) *Renderer {
	return &Renderer{symbols: symbols}
}

// Render produces the PDF bytes for an invoice.
func (r *Renderer) Render(inv *domain.InvoiceWithLines) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	money := func(amount float64) string {
		return tr(invoice.FormatCurrency(amount, inv.Currency, r.symbols))
	}

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(100, 10, "INVOICE")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 10, tr(inv.InvoiceNumber), "", 1, "R", false, 0, "")

	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(100, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Issued: "+invoice.FormatTime(inv.InvoiceDate), "", 1, "R", false, 0, "")
	pdf.CellFormat(100, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Due: "+invoice.FormatTime(inv.DueDate), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	// Parties
	r.party(pdf, tr, "From", inv.SenderName, inv.SenderEmail, inv.SenderPhone, inv.SenderAddress, 0)
	r.party(pdf, tr, "Bill To", inv.ClientName, inv.ClientEmail, inv.ClientPhone, inv.ClientAddress, 105)
	pdf.Ln(10)

	// Line item table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range inv.LineItems {
		pdf.CellFormat(95, 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, trimZeros(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, money(item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, money(item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block. Tax and discount rows are shown only when positive, but
	// the stored amounts exist either way.
	r.totalRow(pdf, "Subtotal", money(inv.Subtotal), false)
	if inv.TaxAmount > 0 {
		r.totalRow(pdf, fmt.Sprintf("Tax (%s%%)", trimZeros(inv.TaxRate)), money(inv.TaxAmount), false)
	}
	if inv.DiscountAmount > 0 {
		r.totalRow(pdf, "Discount", "-"+money(inv.DiscountAmount), false)
	}
	r.totalRow(pdf, "Total", money(inv.Total), true)

	// Footer notes
	if inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(inv.Notes), "", "L", false)
	}
	if inv.PaymentInstructions != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Payment Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(inv.PaymentInstructions), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) party(pdf *gofpdf.Fpdf, tr func(string) string, label, name, email, phone, address string, x float64) {
	top := pdf.GetY()
	left, _, _, _ := pdf.GetMargins()
	pdf.SetXY(left+x, top)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(95, 5, label, "", 2, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(95, 5, tr(name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{email, phone, address} {
		if line != "" {
			pdf.CellFormat(95, 5, tr(line), "", 2, "L", false, 0, "")
		}
	}
	if x == 0 {
		pdf.SetY(top)
	}
}

func (r *Renderer) totalRow(pdf *gofpdf.Fpdf, label, value string, emphasize bool) {
	if emphasize {
		pdf.SetFont("Helvetica", "B", 11)
	} else {
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, value, "", 1, "R", false, 0, "")
}

// trimZeros formats a quantity or rate without trailing decimal noise.
func trimZeros(v float64) string {
	return fmt.Sprintf("%g", v)
}
