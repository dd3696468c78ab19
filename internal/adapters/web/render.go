package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"invoice-dashboard/internal/core"
	webui "invoice-dashboard/web"
	"invoice-dashboard/web/templates/layouts"
)

// templateFuncs are available to every page template.
var templateFuncs = template.FuncMap{
	"formatCurrency": core.FormatCurrency,
	"formatDate":     core.FormatDate,
}

// pageSet holds the parsed template for each browser page. Every page is
// parsed together with the shared layout at handler construction.
type pageSet struct {
	dashboard   *template.Template
	invoices    *template.Template
	invoiceForm *template.Template
	customers   *template.Template
	notFound    *template.Template
}

func newPageSet() *pageSet {
	return &pageSet{
		dashboard:   parsePage("dashboard.html"),
		invoices:    parsePage("invoices.html"),
		invoiceForm: parsePage("invoice_form.html"),
		customers:   parsePage("customers.html"),
		notFound:    parsePage("notfound.html"),
	}
}

// parsePage parses one page template with the layout. The templates are
// embedded at build time, so a parse failure is a programming error.
func parsePage(page string) *template.Template {
	t, err := template.New("layout").Funcs(templateFuncs).ParseFS(webui.Templates,
		"templates/layout.html", "templates/"+page)
	if err != nil {
		panic("web/templates parse failed for " + page + ": " + err.Error())
	}
	return t
}

// renderPage executes the page template into a buffer first so a mid-render
// failure produces a clean 500 instead of a torn page.
func (h *Handler) renderPage(w http.ResponseWriter, status int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type notFoundData struct {
	layouts.AppLayoutData
	Detail string
}

// notFoundPage renders the 404 page with a short explanation.
func (h *Handler) notFoundPage(w http.ResponseWriter, r *http.Request, detail string) {
	h.renderPage(w, http.StatusNotFound, h.pages.notFound, notFoundData{
		AppLayoutData: buildLayout(r, "Not Found", ""),
		Detail:        detail,
	})
}

// buildLayout assembles the shared page chrome, picking up flash messages
// from the query string. Form pages carry transient failures in the "error"
// parameter; listing pages use "flash_success" and "flash_error".
func buildLayout(r *http.Request, title, activeNav string) layouts.AppLayoutData {
	d := layouts.AppLayoutData{Title: title, ActiveNav: activeNav}
	q := r.URL.Query()
	if fe := q.Get("flash_error"); fe != "" {
		d.FlashMsg = fe
		d.FlashKind = "error"
	}
	if fs := q.Get("flash_success"); fs != "" {
		d.FlashMsg = fs
		d.FlashKind = "success"
	}
	if e := q.Get("error"); e != "" {
		d.FlashMsg = e
		d.FlashKind = "error"
	}
	return d
}
