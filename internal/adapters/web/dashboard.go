package web

import (
	"fmt"
	"net/http"

	"invoice-dashboard/internal/core"
	"invoice-dashboard/web/templates/layouts"
)

type dashboardData struct {
	layouts.AppLayoutData
	Cards  *core.CardData
	Chart  revenueChart
	Latest []core.LatestInvoice
}

// revenueChart carries everything the template needs to draw the monthly
// bar chart: y-axis labels bottom-up and one bar per month scaled against
// the axis top.
type revenueChart struct {
	Labels []string
	Bars   []revenueBar
}

type revenueBar struct {
	Month     string
	HeightPct int
}

// buildRevenueChart scales monthly revenue against the next round thousand
// above the busiest month, with a "$NK" label per thousand-dollar step.
func buildRevenueChart(months []core.RevenueMonth) revenueChart {
	if len(months) == 0 {
		return revenueChart{}
	}

	var max int64
	for _, m := range months {
		if m.Revenue > max {
			max = m.Revenue
		}
	}
	top := (max + 999) / 1000 * 1000
	if top == 0 {
		top = 1000
	}

	var chart revenueChart
	for k := int64(0); k <= top; k += 1000 {
		chart.Labels = append(chart.Labels, fmt.Sprintf("$%dK", k/1000))
	}
	for _, m := range months {
		chart.Bars = append(chart.Bars, revenueBar{
			Month:     m.Month,
			HeightPct: int(m.Revenue * 100 / top),
		})
	}
	return chart
}

// dashboardPage handles GET /.
func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, h.pages.dashboard, dashboardData{
		AppLayoutData: buildLayout(r, "Dashboard", "dashboard"),
		Cards:         result.Cards,
		Chart:         buildRevenueChart(result.Revenue),
		Latest:        result.Latest,
	})
}
