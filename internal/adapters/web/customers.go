package web

import (
	"net/http"

	"invoice-dashboard/internal/core"
	"invoice-dashboard/web/templates/layouts"
)

type customersData struct {
	layouts.AppLayoutData
	Customers []core.CustomerSummary
	Query     string
}

// customersPage handles GET /customers.
func (h *Handler) customersPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	result, err := h.svc.ListCustomers(r.Context(), query)
	if err != nil {
		http.Error(w, "Failed to load customers", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, h.pages.customers, customersData{
		AppLayoutData: buildLayout(r, "Customers", "customers"),
		Customers:     result.Customers,
		Query:         query,
	})
}
