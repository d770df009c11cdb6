package invoice

// Party identifies one side of an invoice (sender or client).
// All fields are free text; the engine never validates them.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItem is one billable row. Amount is always Quantity*Rate; LineItemAmount
// is the only writer except when loading an already-consistent stored record.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// DiscountType selects how a discount is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is a reduction applied to the subtotal, either as a percentage of
// it or as an absolute amount.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// Snapshot is the complete set of field values describing one invoice at a
// point in time, prior to persistence. It is owned by a single editing
// session; the engine only ever reads it.
type Snapshot struct {
	InvoiceNumber       string       `json:"invoice_number"`
	InvoiceDate         string       `json:"invoice_date"`
	DueDate             string       `json:"due_date"`
	Currency            CurrencyCode `json:"currency"`
	Sender              Party        `json:"sender"`
	Client              Party        `json:"client"`
	LineItems           []LineItem   `json:"line_items"`
	TaxRate             float64      `json:"tax_rate"`
	Discount            Discount     `json:"discount"`
	Notes               string       `json:"notes"`
	PaymentInstructions string       `json:"payment_instructions"`
}

// Totals is the derived {subtotal, tax, discount, total} tuple. It has no
// identity of its own: it is recomputed from a Snapshot whenever presented
// and once more at persistence time.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}
