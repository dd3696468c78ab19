package web

import (
	"io/fs"
	"net/http"

	"invoice-dashboard/internal/app"
	webui "invoice-dashboard/web"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService, the parsed page templates, and the
// page cache for the listing routes.
type Handler struct {
	svc        app.ApplicationService
	pages      *pageSet
	cache      *PageCache
	fileServer http.Handler
}

// NewHandler creates and wires the chi router with all routes. cache may be
// nil to serve every page uncached.
func NewHandler(svc app.ApplicationService, cache *PageCache, allowedOrigins string) http.Handler {
	staticFS, err := fs.Sub(webui.Static, "static")
	if err != nil {
		panic("web/static embed sub-FS failed: " + err.Error())
	}

	h := &Handler{
		svc:        svc,
		pages:      newPageSet(),
		cache:      cache,
		fileServer: http.FileServer(http.FS(staticFS)),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB; the invoice form is tiny

	// ── Static files served at /static/* ─────────────────────────────────────
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})

	// ── Cached listing pages ──────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		if cache != nil {
			r.Use(cache.Middleware)
		}
		r.Get("/", h.dashboardPage)
		r.Get("/invoices", h.invoicesPage)
		r.Get("/customers", h.customersPage)
	})

	// ── Invoice forms and actions ─────────────────────────────────────────────
	r.Get("/invoices/new", h.invoiceCreatePage)
	r.Post("/invoices/new", h.invoiceCreateAction)
	r.Get("/invoices/export", h.invoicesExport)
	r.Get("/invoices/{id}/edit", h.invoiceEditPage)
	r.Post("/invoices/{id}/edit", h.invoiceEditAction)
	r.Post("/invoices/{id}/delete", h.invoiceDeleteAction)

	// ── JSON API ──────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Get("/api/revenue", h.apiRevenue)
	r.Get("/api/invoices", h.apiListInvoices)
	r.Get("/api/customers", h.apiListCustomers)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		h.notFoundPage(w, req, "Could not find the requested page.")
	})

	return r
}

// invoiceID extracts the {id} URL parameter.
func invoiceID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
