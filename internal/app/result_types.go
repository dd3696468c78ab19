package app

import "invoice-dashboard/internal/core"

// User-facing messages for failed form actions.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
)

// ActionResult is the failure outcome of a form action. Errors is set for
// validation failures, Message always carries the top-line text. A nil
// *ActionResult means the action succeeded.
type ActionResult struct {
	Errors  core.FieldErrors
	Message string
}

// DashboardResult is returned by GetDashboard.
type DashboardResult struct {
	Cards   *core.CardData
	Revenue []core.RevenueMonth
	Latest  []core.LatestInvoice
}

// InvoiceListResult is returned by ListInvoices.
type InvoiceListResult struct {
	Invoices    []core.InvoiceRow
	Query       string
	Page        int
	TotalPages  int
	PageNumbers []string
}

// InvoiceFormResult is returned by GetInvoiceForm.
type InvoiceFormResult struct {
	Invoice   *core.Invoice
	Customers []core.CustomerField
}

// CustomerListResult is returned by ListCustomers.
type CustomerListResult struct {
	Customers []core.CustomerSummary
	Query     string
}
