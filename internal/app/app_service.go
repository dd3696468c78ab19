package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"invoice-dashboard/internal/core"
)

type appService struct {
	invoices    core.InvoiceService
	customers   core.CustomerService
	dashboard   core.DashboardService
	revalidator Revalidator
	logger      *slog.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	invoices core.InvoiceService,
	customers core.CustomerService,
	dashboard core.DashboardService,
	revalidator Revalidator,
	logger *slog.Logger,
) ApplicationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &appService{
		invoices:    invoices,
		customers:   customers,
		dashboard:   dashboard,
		revalidator: revalidator,
		logger:      logger,
	}
}

// latestInvoiceCount is how many invoices the overview page lists.
const latestInvoiceCount = 5

// GetDashboard loads the card aggregates, revenue series and latest invoices.
func (s *appService) GetDashboard(ctx context.Context) (*DashboardResult, error) {
	cards, err := s.dashboard.GetCardData(ctx)
	if err != nil {
		s.logger.Error("load dashboard cards", "error", err)
		return nil, err
	}
	revenue, err := s.dashboard.GetRevenue(ctx)
	if err != nil {
		s.logger.Error("load revenue series", "error", err)
		return nil, err
	}
	latest, err := s.invoices.GetLatestInvoices(ctx, latestInvoiceCount)
	if err != nil {
		s.logger.Error("load latest invoices", "error", err)
		return nil, err
	}
	return &DashboardResult{Cards: cards, Revenue: revenue, Latest: latest}, nil
}

// ListInvoices returns one listing page plus its pagination state.
func (s *appService) ListInvoices(ctx context.Context, query string, page int) (*InvoiceListResult, error) {
	if page < 1 {
		page = 1
	}

	totalPages, err := s.invoices.CountInvoicePages(ctx, query)
	if err != nil {
		s.logger.Error("count invoice pages", "error", err, "query", query)
		return nil, err
	}
	invoices, err := s.invoices.GetFilteredInvoices(ctx, query, page)
	if err != nil {
		s.logger.Error("list invoices", "error", err, "query", query, "page", page)
		return nil, err
	}

	return &InvoiceListResult{
		Invoices:    invoices,
		Query:       query,
		Page:        page,
		TotalPages:  totalPages,
		PageNumbers: core.PageNumbers(page, totalPages),
	}, nil
}

// GetInvoiceForm loads an invoice with the customer options for editing.
func (s *appService) GetInvoiceForm(ctx context.Context, id string) (*InvoiceFormResult, error) {
	invoice, err := s.invoices.GetInvoiceByID(ctx, id)
	if err != nil {
		s.logger.Error("load invoice", "error", err, "id", id)
		return nil, err
	}
	customers, err := s.customers.GetCustomerFields(ctx)
	if err != nil {
		s.logger.Error("load customer fields", "error", err)
		return nil, err
	}
	return &InvoiceFormResult{Invoice: invoice, Customers: customers}, nil
}

// ListCustomerFields returns the dropdown options for the create form.
func (s *appService) ListCustomerFields(ctx context.Context) ([]core.CustomerField, error) {
	customers, err := s.customers.GetCustomerFields(ctx)
	if err != nil {
		s.logger.Error("load customer fields", "error", err)
		return nil, err
	}
	return customers, nil
}

// ListCustomers returns the customers table with invoice aggregates.
func (s *appService) ListCustomers(ctx context.Context, query string) (*CustomerListResult, error) {
	customers, err := s.customers.GetFilteredCustomers(ctx, query)
	if err != nil {
		s.logger.Error("list customers", "error", err, "query", query)
		return nil, err
	}
	return &CustomerListResult{Customers: customers, Query: query}, nil
}

// ExportInvoices returns every row matching the query for the CSV download.
func (s *appService) ExportInvoices(ctx context.Context, query string) ([]core.InvoiceRow, error) {
	invoices, err := s.invoices.GetInvoicesForExport(ctx, query)
	if err != nil {
		s.logger.Error("export invoices", "error", err, "query", query)
		return nil, err
	}
	return invoices, nil
}

// CreateInvoice validates the form and stores a new invoice dated today.
func (s *appService) CreateInvoice(ctx context.Context, form core.InvoiceForm) *ActionResult {
	parsed, fieldErrs := form.Parse()
	if fieldErrs != nil {
		return &ActionResult{Errors: fieldErrs, Message: MsgCreateMissingFields}
	}

	// The date is stamped server-side; the form never carries one.
	_, err := s.invoices.CreateInvoice(ctx, core.InvoiceInput{
		CustomerID:  parsed.CustomerID,
		AmountCents: parsed.AmountCents,
		Status:      parsed.Status,
		Date:        time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("create invoice", "error", err)
		return &ActionResult{Message: MsgCreateDBError}
	}

	s.revalidator.Revalidate("/invoices")
	return nil
}

// UpdateInvoice validates the form and rewrites an existing invoice.
func (s *appService) UpdateInvoice(ctx context.Context, id string, form core.InvoiceForm) *ActionResult {
	parsed, fieldErrs := form.Parse()
	if fieldErrs != nil {
		return &ActionResult{Errors: fieldErrs, Message: MsgUpdateMissingFields}
	}

	err := s.invoices.UpdateInvoice(ctx, id, core.InvoiceInput{
		CustomerID:  parsed.CustomerID,
		AmountCents: parsed.AmountCents,
		Status:      parsed.Status,
	})
	if err != nil {
		s.logger.Error("update invoice", "error", err, "id", id)
		return &ActionResult{Message: MsgUpdateDBError}
	}

	s.revalidator.Revalidate("/invoices")
	return nil
}

// DeleteInvoice removes an invoice. Deleting an id that no longer exists is
// logged and treated as done, so a double-submitted delete stays harmless.
func (s *appService) DeleteInvoice(ctx context.Context, id string) *ActionResult {
	err := s.invoices.DeleteInvoice(ctx, id)
	switch {
	case errors.Is(err, core.ErrNotFound):
		s.logger.Error("delete invoice: no such invoice", "id", id)
	case err != nil:
		s.logger.Error("delete invoice", "error", err, "id", id)
		return &ActionResult{Message: MsgDeleteDBError}
	}

	s.revalidator.Revalidate("/invoices")
	return nil
}
