package web

import (
	"encoding/csv"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"invoice-dashboard/internal/app"
	"invoice-dashboard/internal/core"
	"invoice-dashboard/web/templates/layouts"
)

// ── Listing page ──────────────────────────────────────────────────────────────

type invoicesData struct {
	layouts.AppLayoutData
	Invoices  []core.InvoiceRow
	Query     string
	ExportURL string
	Pages     []pageLink
}

// pageLink is one rendered pagination slot: a number linking to its page,
// the current page, or an ellipsis gap.
type pageLink struct {
	Label   string
	URL     string
	Current bool
	Gap     bool
}

// buildPageLinks turns the pagination sequence into renderable links, keeping
// the active search query in each URL.
func buildPageLinks(query string, current int, numbers []string) []pageLink {
	links := make([]pageLink, 0, len(numbers))
	for _, n := range numbers {
		if n == core.Ellipsis {
			links = append(links, pageLink{Gap: true})
			continue
		}
		link := pageLink{Label: n, Current: n == strconv.Itoa(current)}
		if !link.Current {
			link.URL = listingURL(query, n)
		}
		links = append(links, link)
	}
	return links
}

func listingURL(query, page string) string {
	v := url.Values{}
	if query != "" {
		v.Set("query", query)
	}
	if page != "" && page != "1" {
		v.Set("page", page)
	}
	if enc := v.Encode(); enc != "" {
		return "/invoices?" + enc
	}
	return "/invoices"
}

// invoicesPage handles GET /invoices.
func (h *Handler) invoicesPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.svc.ListInvoices(r.Context(), query, page)
	if err != nil {
		http.Error(w, "Failed to load invoices", http.StatusInternalServerError)
		return
	}

	exportURL := "/invoices/export"
	if query != "" {
		exportURL += "?query=" + url.QueryEscape(query)
	}

	var links []pageLink
	if result.TotalPages > 1 {
		links = buildPageLinks(query, result.Page, result.PageNumbers)
	}

	h.renderPage(w, http.StatusOK, h.pages.invoices, invoicesData{
		AppLayoutData: buildLayout(r, "Invoices", "invoices"),
		Invoices:      result.Invoices,
		Query:         query,
		ExportURL:     exportURL,
		Pages:         links,
	})
}

// ── Create and edit forms ─────────────────────────────────────────────────────

type invoiceFormData struct {
	layouts.AppLayoutData
	Heading   string
	Action    string
	Submit    string
	Customers []core.CustomerField
	Values    formValues
	Errors    core.FieldErrors
	Message   string
}

// formValues echoes the submitted form back into the inputs so a failed
// submission never loses what the user typed.
type formValues struct {
	CustomerID string
	Amount     string
	Status     string
}

// invoiceCreatePage handles GET /invoices/new.
func (h *Handler) invoiceCreatePage(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomerFields(r.Context())
	if err != nil {
		http.Error(w, "Failed to load customers", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, h.pages.invoiceForm, invoiceFormData{
		AppLayoutData: buildLayout(r, "Create Invoice", "invoices"),
		Heading:       "Create Invoice",
		Action:        "/invoices/new",
		Submit:        "Create Invoice",
		Customers:     customers,
	})
}

// invoiceCreateAction handles POST /invoices/new — HTML form submission.
func (h *Handler) invoiceCreateAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/invoices/new?error=invalid+form", http.StatusSeeOther)
		return
	}

	form := core.InvoiceForm{
		CustomerID: r.FormValue("customerId"),
		Amount:     r.FormValue("amount"),
		Status:     r.FormValue("status"),
	}

	if res := h.svc.CreateInvoice(r.Context(), form); res != nil {
		h.renderFormFailure(w, r, "Create Invoice", "/invoices/new", "Create Invoice", form, res)
		return
	}

	http.Redirect(w, r, "/invoices?flash_success=Invoice+created", http.StatusSeeOther)
}

// invoiceEditPage handles GET /invoices/{id}/edit.
func (h *Handler) invoiceEditPage(w http.ResponseWriter, r *http.Request) {
	id := invoiceID(r)

	result, err := h.svc.GetInvoiceForm(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			h.notFoundPage(w, r, "Could not find the requested invoice.")
			return
		}
		http.Error(w, "Failed to load invoice", http.StatusInternalServerError)
		return
	}

	inv := result.Invoice
	h.renderPage(w, http.StatusOK, h.pages.invoiceForm, invoiceFormData{
		AppLayoutData: buildLayout(r, "Edit Invoice", "invoices"),
		Heading:       "Edit Invoice",
		Action:        "/invoices/" + id + "/edit",
		Submit:        "Edit Invoice",
		Customers:     result.Customers,
		Values: formValues{
			CustomerID: inv.CustomerID,
			Amount:     inv.AmountCents.Dollars().StringFixed(2),
			Status:     string(inv.Status),
		},
	})
}

// invoiceEditAction handles POST /invoices/{id}/edit — HTML form submission.
func (h *Handler) invoiceEditAction(w http.ResponseWriter, r *http.Request) {
	id := invoiceID(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/invoices/"+id+"/edit?error=invalid+form", http.StatusSeeOther)
		return
	}

	form := core.InvoiceForm{
		CustomerID: r.FormValue("customerId"),
		Amount:     r.FormValue("amount"),
		Status:     r.FormValue("status"),
	}

	if res := h.svc.UpdateInvoice(r.Context(), id, form); res != nil {
		h.renderFormFailure(w, r, "Edit Invoice", "/invoices/"+id+"/edit", "Edit Invoice", form, res)
		return
	}

	http.Redirect(w, r, "/invoices?flash_success=Invoice+updated", http.StatusSeeOther)
}

// renderFormFailure redraws the invoice form with the submitted values, the
// per-field messages, and the summary message from a failed action.
func (h *Handler) renderFormFailure(w http.ResponseWriter, r *http.Request, heading, action, submit string, form core.InvoiceForm, res *app.ActionResult) {
	customers, err := h.svc.ListCustomerFields(r.Context())
	if err != nil {
		// The form cannot be redrawn without its customer list.
		http.Redirect(w, r, "/invoices?flash_error="+url.QueryEscape(res.Message), http.StatusSeeOther)
		return
	}

	h.renderPage(w, http.StatusOK, h.pages.invoiceForm, invoiceFormData{
		AppLayoutData: buildLayout(r, heading, "invoices"),
		Heading:       heading,
		Action:        action,
		Submit:        submit,
		Customers:     customers,
		Values: formValues{
			CustomerID: form.CustomerID,
			Amount:     form.Amount,
			Status:     form.Status,
		},
		Errors:  res.Errors,
		Message: res.Message,
	})
}

// ── Delete ────────────────────────────────────────────────────────────────────

// invoiceDeleteAction handles POST /invoices/{id}/delete.
func (h *Handler) invoiceDeleteAction(w http.ResponseWriter, r *http.Request) {
	id := invoiceID(r)

	if res := h.svc.DeleteInvoice(r.Context(), id); res != nil {
		http.Redirect(w, r, "/invoices?flash_error="+url.QueryEscape(res.Message), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/invoices", http.StatusSeeOther)
}

// ── CSV export ────────────────────────────────────────────────────────────────

// invoicesExport handles GET /invoices/export — CSV download of the invoice
// list under the current search filter.
func (h *Handler) invoicesExport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	rows, err := h.svc.ExportInvoices(r.Context(), query)
	if err != nil {
		http.Error(w, "Failed to export invoices", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Customer", "Email", "Amount", "Date", "Status"})
	for _, inv := range rows {
		_ = cw.Write([]string{
			csvSafe(inv.CustomerName),
			csvSafe(inv.Email),
			core.FormatCurrency(inv.AmountCents),
			inv.Date.Format("2006-01-02"),
			string(inv.Status),
		})
	}
	cw.Flush()
}

// csvSafe guards against spreadsheet formula injection: cells starting with
// a formula trigger character are prefixed with a single quote.
func csvSafe(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
