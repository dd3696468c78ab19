package core

import (
	"context"
	"time"
)

// Invoice is a single invoice row as stored.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents Cents
	Status      InvoiceStatus
	Date        time.Time
}

// InvoiceInput holds the typed fields written by create and update.
// Date is only consulted on create; update never touches the stored date.
type InvoiceInput struct {
	CustomerID  string
	AmountCents Cents
	Status      InvoiceStatus
	Date        time.Time
}

// InvoiceRow is one row of the searchable listing, joined with its customer.
type InvoiceRow struct {
	ID           string
	AmountCents  Cents
	Date         time.Time
	Status       InvoiceStatus
	CustomerName string
	Email        string
	ImageURL     string
}

// LatestInvoice is one entry of the dashboard's most-recent list.
type LatestInvoice struct {
	ID          string
	Name        string
	Email       string
	ImageURL    string
	AmountCents Cents
}

// InvoiceService provides all invoice reads and writes.
type InvoiceService interface {
	// GetLatestInvoices returns the newest invoices with their customer,
	// most recent first.
	GetLatestInvoices(ctx context.Context, limit int) ([]LatestInvoice, error)

	// GetFilteredInvoices returns one listing page matching the search
	// query. The query is matched case-insensitively as a substring of
	// the customer name, email, amount, date and status columns.
	GetFilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceRow, error)

	// CountInvoicePages returns how many listing pages the query yields.
	CountInvoicePages(ctx context.Context, query string) (int, error)

	// GetInvoicesForExport returns every row matching the query,
	// unpaginated, for the CSV download.
	GetInvoicesForExport(ctx context.Context, query string) ([]InvoiceRow, error)

	// GetInvoiceByID returns a single invoice for the edit form.
	GetInvoiceByID(ctx context.Context, id string) (*Invoice, error)

	// CreateInvoice inserts a new invoice with a generated id.
	CreateInvoice(ctx context.Context, input InvoiceInput) (*Invoice, error)

	// UpdateInvoice rewrites customer, amount and status of an existing invoice.
	UpdateInvoice(ctx context.Context, id string, input InvoiceInput) error

	// DeleteInvoice removes an invoice by id.
	DeleteInvoice(ctx context.Context, id string) error
}
