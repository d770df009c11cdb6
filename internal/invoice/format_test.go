package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"factura/internal/invoice"
)

func TestFormatCurrency(t *testing.T) {
	symbols := invoice.DefaultSymbols()

	tests := []struct {
		name   string
		amount float64
		code   invoice.CurrencyCode
		want   string
	}{
		{"positive USD", 1250.5, invoice.CurrencyUSD, "$1,250.50"},
		{"negative sign before symbol", -12.5, invoice.CurrencyUSD, "-$12.50"},
		{"zero JPY keeps two decimals", 0, invoice.CurrencyJPY, "¥0.00"},
		{"euro", 99.999, invoice.CurrencyEUR, "€100.00"},
		{"grouping over a million", 1234567.89, invoice.CurrencyGBP, "£1,234,567.89"},
		{"rupee", 87.5, invoice.CurrencyINR, "₹87.50"},
		{"multi-char symbol", 10, invoice.CurrencyCHF, "CHF10.00"},
		{"small fraction", 0.004, invoice.CurrencyUSD, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.FormatCurrency(tt.amount, tt.code, symbols))
		})
	}
}

func TestFormatCurrency_UnmappedCodeFallsBackToCode(t *testing.T) {
	got := invoice.FormatCurrency(5, invoice.CurrencyCode("XYZ"), invoice.DefaultSymbols())
	assert.Equal(t, "XYZ5.00", got)
}

func TestFormatCurrency_CustomSymbolTable(t *testing.T) {
	symbols := invoice.SymbolTable{invoice.CurrencyUSD: "US$"}
	assert.Equal(t, "US$1.00", invoice.FormatCurrency(1, invoice.CurrencyUSD, symbols))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "January 5, 2025", invoice.FormatDate("2025-01-05"))
	assert.Equal(t, "December 31, 1999", invoice.FormatDate("1999-12-31"))
	assert.Equal(t, "March 15, 2024", invoice.FormatDate("2024-03-15T10:30:00Z"))
}

func TestFormatDate_InvalidInputReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", invoice.FormatDate("not-a-date"))
	assert.Equal(t, "", invoice.FormatDate(""))
	assert.Equal(t, "", invoice.FormatDate("2025-13-45"))
}

func TestDefaultSymbols_CoversAllSupportedCurrencies(t *testing.T) {
	symbols := invoice.DefaultSymbols()
	codes := invoice.SupportedCurrencies()

	assert.Len(t, codes, 20)
	for _, code := range codes {
		assert.Contains(t, symbols, code)
	}
}

func TestDefaultSymbols_ReturnsACopy(t *testing.T) {
	a := invoice.DefaultSymbols()
	a[invoice.CurrencyUSD] = "changed"

	b := invoice.DefaultSymbols()
	assert.Equal(t, "$", b[invoice.CurrencyUSD])
}
