package core

import "context"

// Customer is read-only master data; this app never writes the customers table.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerField is the id/name pair the invoice form dropdown needs.
type CustomerField struct {
	ID   string
	Name string
}

// CustomerSummary is one row of the customers table with its invoice
// aggregates. Totals coalesce to zero for customers without invoices.
type CustomerSummary struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	PendingCents  Cents
	PaidCents     Cents
}

// CustomerService provides customer reads.
type CustomerService interface {
	// GetCustomerFields returns every customer as a dropdown option,
	// ordered by name.
	GetCustomerFields(ctx context.Context) ([]CustomerField, error)

	// GetFilteredCustomers returns customers matching the query by name
	// or email, with their invoice count and pending/paid totals.
	GetFilteredCustomers(ctx context.Context, query string) ([]CustomerSummary, error)
}
