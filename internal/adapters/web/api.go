package web

import (
	"net/http"
	"strconv"

	"invoice-dashboard/internal/core"
)

// Core types carry no JSON tags; the wire shapes live here.

type apiInvoice struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	ImageURL     string `json:"image_url"`
	AmountCents  int64  `json:"amount_cents"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

type apiRevenueMonth struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type apiCustomer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// health returns service liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, http.StatusOK, response{Status: "ok"})
}

// apiRevenue handles GET /api/revenue.
func (h *Handler) apiRevenue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	months := make([]apiRevenueMonth, 0, len(result.Revenue))
	for _, m := range result.Revenue {
		months = append(months, apiRevenueMonth{Month: m.Month, Revenue: m.Revenue})
	}
	writeJSON(w, http.StatusOK, months)
}

// apiListInvoices handles GET /api/invoices?query=&page=.
func (h *Handler) apiListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.svc.ListInvoices(r.Context(), query, page)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	invoices := make([]apiInvoice, 0, len(result.Invoices))
	for _, inv := range result.Invoices {
		invoices = append(invoices, apiInvoice{
			ID:           inv.ID,
			CustomerName: inv.CustomerName,
			Email:        inv.Email,
			ImageURL:     inv.ImageURL,
			AmountCents:  int64(inv.AmountCents),
			Amount:       core.FormatCurrency(inv.AmountCents),
			Date:         inv.Date.Format("2006-01-02"),
			Status:       string(inv.Status),
		})
	}

	type response struct {
		Invoices   []apiInvoice `json:"invoices"`
		Page       int          `json:"page"`
		TotalPages int          `json:"total_pages"`
	}
	writeJSON(w, http.StatusOK, response{Invoices: invoices, Page: result.Page, TotalPages: result.TotalPages})
}

// apiListCustomers handles GET /api/customers?query=.
func (h *Handler) apiListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	result, err := h.svc.ListCustomers(r.Context(), query)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	customers := make([]apiCustomer, 0, len(result.Customers))
	for _, c := range result.Customers {
		customers = append(customers, apiCustomer{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  core.FormatCurrency(c.PendingCents),
			TotalPaid:     core.FormatCurrency(c.PaidCents),
		})
	}
	writeJSON(w, http.StatusOK, customers)
}
