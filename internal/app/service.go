package app

import (
	"context"

	"invoice-dashboard/internal/core"
)

// Revalidator is told after every successful write which path's cached
// rendering is now stale. The web adapter owns the real implementation;
// this package never sees how invalidation works.
type Revalidator interface {
	Revalidate(path string)
}

// ApplicationService is the single interface all UI adapters call.
// It decouples presentation from business logic. Implementations must contain
// no HTML, no redirect handling, and no display logic of any kind.
type ApplicationService interface {
	// GetDashboard returns everything the overview page shows: summary
	// cards, the revenue series and the latest invoices.
	GetDashboard(ctx context.Context) (*DashboardResult, error)

	// ListInvoices returns one listing page plus the pagination state for
	// the given search query.
	ListInvoices(ctx context.Context, query string, page int) (*InvoiceListResult, error)

	// GetInvoiceForm returns an invoice together with the customer options
	// the edit form needs. The error wraps core.ErrNotFound for unknown ids.
	GetInvoiceForm(ctx context.Context, id string) (*InvoiceFormResult, error)

	// ListCustomerFields returns the customer dropdown options for the
	// create form.
	ListCustomerFields(ctx context.Context) ([]core.CustomerField, error)

	// ListCustomers returns the customers table with invoice aggregates.
	ListCustomers(ctx context.Context, query string) (*CustomerListResult, error)

	// ExportInvoices returns every listing row matching the query,
	// unpaginated, for the CSV download.
	ExportInvoices(ctx context.Context, query string) ([]core.InvoiceRow, error)

	// CreateInvoice validates the form, stamps today's date, stores the
	// invoice and revalidates the listing. A non-nil ActionResult carries
	// the user-facing failure; nil means the write went through.
	CreateInvoice(ctx context.Context, form core.InvoiceForm) *ActionResult

	// UpdateInvoice validates the form and rewrites the invoice's
	// customer, amount and status. The stored date never changes.
	UpdateInvoice(ctx context.Context, id string, form core.InvoiceForm) *ActionResult

	// DeleteInvoice removes an invoice. A missing row is logged and
	// treated as done; only an infrastructure failure produces a result.
	DeleteInvoice(ctx context.Context, id string) *ActionResult
}
