// Package xlsxexport writes a user's invoice list as an Excel workbook.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"factura/internal/domain"
	"factura/internal/invoice"
)

// SheetName is the single worksheet holding the invoice rows.
const SheetName = "Invoices"

var headers = []string{
	"Invoice Name",
	"Invoice Number",
	"Invoice Date",
	"Due Date",
	"Client",
	"Currency",
	"Subtotal",
	"Tax",
	"Discount",
	"Total",
	"Total (Formatted)",
	"Created At",
}

// Write renders the invoices into an xlsx workbook and writes it to w.
// Numeric totals go out as raw numbers so spreadsheets can sum them; the
// formatted column carries the display string the app shows.
func Write(w io.Writer, invoices []domain.Invoice, symbols invoice.SymbolTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("dropping default sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range invoices {
		inv := &invoices[i]
		row := []interface{}{
			inv.InvoiceName,
			inv.InvoiceNumber,
			inv.InvoiceDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			inv.ClientName,
			string(inv.Currency),
			inv.Subtotal,
			inv.TaxAmount,
			inv.DiscountAmount,
			inv.Total,
			invoice.FormatCurrency(inv.Total, inv.Currency, symbols),
			inv.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 22); err != nil {
		return fmt.Errorf("setting column widths: %w", err)
	}
	if err := f.SetColWidth(SheetName, "E", "E", 26); err != nil {
		return fmt.Errorf("setting column widths: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
