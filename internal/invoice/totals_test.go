package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"factura/internal/invoice"
)

func TestCalculateTotals_EmptyInvoice(t *testing.T) {
	s := &invoice.Snapshot{
		LineItems: []invoice.LineItem{},
		TaxRate:   0,
		Discount:  invoice.Discount{Type: invoice.DiscountPercentage, Value: 0},
	}

	totals := invoice.CalculateTotals(s)

	assert.Equal(t, invoice.Totals{Subtotal: 0, TaxAmount: 0, DiscountAmount: 0, Total: 0}, totals)
}

func TestCalculateTotals_BasicAggregation(t *testing.T) {
	s := &invoice.Snapshot{
		LineItems: []invoice.LineItem{
			{ID: "line-1", Quantity: 2, Rate: 50, Amount: 100},
			{ID: "line-2", Quantity: 1, Rate: 87.5, Amount: 87.5},
		},
		TaxRate:  10,
		Discount: invoice.Discount{Type: invoice.DiscountPercentage, Value: 5},
	}

	totals := invoice.CalculateTotals(s)

	assert.Equal(t, 187.5, totals.Subtotal)
	assert.Equal(t, 18.75, totals.TaxAmount)
	assert.Equal(t, 9.375, totals.DiscountAmount)
	assert.Equal(t, 196.875, totals.Total)
}

func TestCalculateTotals_FixedDiscountExceedingSubtotal(t *testing.T) {
	s := &invoice.Snapshot{
		LineItems: []invoice.LineItem{
			{ID: "line-1", Quantity: 1, Rate: 50, Amount: 50},
		},
		TaxRate:  0,
		Discount: invoice.Discount{Type: invoice.DiscountFixed, Value: 75},
	}

	totals := invoice.CalculateTotals(s)

	// Fixed discounts are not clamped; the total goes negative.
	assert.Equal(t, 50.0, totals.Subtotal)
	assert.Equal(t, 75.0, totals.DiscountAmount)
	assert.Equal(t, -25.0, totals.Total)
}

func TestCalculateTotals_ZeroTaxAndDiscountStillPresent(t *testing.T) {
	s := &invoice.Snapshot{
		LineItems: []invoice.LineItem{{ID: "line-1", Amount: 40}},
		TaxRate:   0,
		Discount:  invoice.Discount{Type: invoice.DiscountFixed, Value: 0},
	}

	totals := invoice.CalculateTotals(s)

	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 40.0, totals.Total)
}

func TestCalculateTotals_NegativeInputsPropagate(t *testing.T) {
	s := &invoice.Snapshot{
		LineItems: []invoice.LineItem{{ID: "line-1", Quantity: -2, Rate: 10, Amount: -20}},
		TaxRate:   -5,
		Discount:  invoice.Discount{Type: invoice.DiscountPercentage, Value: 0},
	}

	totals := invoice.CalculateTotals(s)

	// Garbage in, garbage out: nothing is validated or rejected.
	assert.Equal(t, -20.0, totals.Subtotal)
	assert.Equal(t, 1.0, totals.TaxAmount)
	assert.Equal(t, -19.0, totals.Total)
}

func TestCalculateTotals_Idempotent(t *testing.T) {
	s := &invoice.Snapshot{
		LineItems: []invoice.LineItem{
			{ID: "line-1", Quantity: 3, Rate: 19.99, Amount: 59.97},
			{ID: "line-2", Quantity: 1, Rate: 0.1, Amount: 0.1},
		},
		TaxRate:  8.5,
		Discount: invoice.Discount{Type: invoice.DiscountPercentage, Value: 2.5},
	}

	first := invoice.CalculateTotals(s)
	second := invoice.CalculateTotals(s)

	assert.Equal(t, first, second)
}

func TestCalculateTotals_OrderIndependent(t *testing.T) {
	items := []invoice.LineItem{
		{ID: "line-1", Amount: 12.34},
		{ID: "line-2", Amount: 56.78},
		{ID: "line-3", Amount: 90.12},
	}
	reversed := []invoice.LineItem{items[2], items[1], items[0]}

	a := invoice.CalculateTotals(&invoice.Snapshot{
		LineItems: items,
		Discount:  invoice.Discount{Type: invoice.DiscountPercentage, Value: 10},
		TaxRate:   7,
	})
	b := invoice.CalculateTotals(&invoice.Snapshot{
		LineItems: reversed,
		Discount:  invoice.Discount{Type: invoice.DiscountPercentage, Value: 10},
		TaxRate:   7,
	})

	assert.Equal(t, a, b)
}

func TestLineItemAmount(t *testing.T) {
	assert.Equal(t, 59.97, invoice.LineItemAmount(3, 19.99))
	assert.Equal(t, 0.0, invoice.LineItemAmount(0, 19.99))
	assert.Equal(t, 0.0, invoice.LineItemAmount(5, 0))
	assert.Equal(t, -30.0, invoice.LineItemAmount(-3, 10))
}
