package domain

// InvoiceSort names a sortable invoice list column.
type InvoiceSort string

const (
	SortCreatedAt     InvoiceSort = "created_at"
	SortInvoiceDate   InvoiceSort = "invoice_date"
	SortInvoiceName   InvoiceSort = "invoice_name"
	SortInvoiceNumber InvoiceSort = "invoice_number"
	SortTotal         InvoiceSort = "total"
)

// ValidInvoiceSorts is the whitelist of sortable columns. Sort values are
// interpolated into ORDER BY, so anything outside this set is rejected
// before it reaches the repository.
var ValidInvoiceSorts = map[InvoiceSort]bool{
	SortCreatedAt:     true,
	SortInvoiceDate:   true,
	SortInvoiceName:   true,
	SortInvoiceNumber: true,
	SortTotal:         true,
}

// InvoiceListFilters holds pagination, search and sorting for invoice lists.
type InvoiceListFilters struct {
	Search   string
	SortBy   InvoiceSort
	SortDesc bool
	Offset   int
	Limit    int
}
