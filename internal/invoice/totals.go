// Package invoice implements the invoice totals engine: pure derivation of
// subtotal, tax, discount and grand total from an in-memory snapshot, plus
// the deterministic generators and display formatters around it. Nothing in
// this package performs I/O or holds state.
package invoice

// CalculateTotals derives the totals for a snapshot.
//
// Evaluation order is fixed: subtotal is the sum of line item amounts, tax is
// subtotal*taxRate/100, discount is either subtotal*value/100 or the fixed
// value as-is, and total = subtotal + tax - discount. No value is rounded or
// clamped: a fixed discount larger than the subtotal yields a negative total,
// and negative quantities or rates flow through unchanged. Zero tax and zero
// discount still produce explicit zero amounts.
func CalculateTotals(s *Snapshot) Totals {
	var subtotal float64
	for i := range s.LineItems {
		subtotal += s.LineItems[i].Amount
	}

	taxAmount := subtotal * (s.TaxRate / 100)

	var discountAmount float64
	if s.Discount.Type == DiscountPercentage {
		discountAmount = subtotal * (s.Discount.Value / 100)
	} else {
		discountAmount = s.Discount.Value
	}

	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		Total:          subtotal + taxAmount - discountAmount,
	}
}

// LineItemAmount derives a line item's amount from quantity and rate. Callers
// feeding values from text fields substitute 0 for anything unparseable
// before calling; parse failures never reach the engine.
func LineItemAmount(quantity, rate float64) float64 {
	return quantity * rate
}
