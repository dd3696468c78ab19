package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"invoice-dashboard/internal/app"
	"invoice-dashboard/internal/core"
)

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(rr, req)
	return rr
}

func TestInvoicesPage(t *testing.T) {
	svc := &fakeService{
		listInvoicesFn: func(ctx context.Context, query string, page int) (*app.InvoiceListResult, error) {
			return &app.InvoiceListResult{
				Invoices: []core.InvoiceRow{
					{ID: "inv-1", AmountCents: 4400, Date: time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC), Status: core.StatusPaid, CustomerName: "Alice Archer", Email: "alice@archer.dev"},
					{ID: "inv-2", AmountCents: 1550, Date: time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC), Status: core.StatusPending, CustomerName: "Bert Birch", Email: "bert@birch.io"},
				},
				Query:       query,
				Page:        1,
				TotalPages:  3,
				PageNumbers: []string{"1", "2", "3"},
			}, nil
		},
	}

	rr := doGet(t, newTestHandler(svc), "/invoices")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"Alice Archer", "Bert Birch", "$44.00", "$15.50",
		"Oct 4, 2024", "badge-paid", "badge-pending",
		"/invoices/inv-1/edit", "/invoices/inv-2/delete",
		"/invoices?page=2", `<span class="current">1</span>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("invoices body missing %q", want)
		}
	}
}

func TestInvoicesPage_SearchKeepsQueryInLinks(t *testing.T) {
	svc := &fakeService{
		listInvoicesFn: func(ctx context.Context, query string, page int) (*app.InvoiceListResult, error) {
			return &app.InvoiceListResult{
				Query:       query,
				Page:        2,
				TotalPages:  3,
				PageNumbers: []string{"1", "2", "3"},
			}, nil
		},
	}

	rr := doGet(t, newTestHandler(svc), "/invoices?query=alice&page=2")

	body := rr.Body.String()
	if !strings.Contains(body, "/invoices/export?query=alice") {
		t.Error("export link should carry the search query")
	}
	if !strings.Contains(body, "/invoices?page=3&amp;query=alice") {
		t.Error("page links should carry the search query")
	}
	if !strings.Contains(body, `href="/invoices?query=alice"`) {
		t.Error("page 1 link should drop the page parameter")
	}
}

func TestInvoiceCreateAction_RedirectsOnSuccess(t *testing.T) {
	var gotForm core.InvoiceForm
	svc := &fakeService{
		createFn: func(ctx context.Context, form core.InvoiceForm) *app.ActionResult {
			gotForm = form
			return nil
		},
	}

	rr := postForm(t, newTestHandler(svc), "/invoices/new", url.Values{
		"customerId": {testCustomerID},
		"amount":     {"250.99"},
		"status":     {"paid"},
	})

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/invoices?flash_success=Invoice+created" {
		t.Errorf("unexpected redirect target %q", loc)
	}
	if gotForm.CustomerID != testCustomerID || gotForm.Amount != "250.99" || gotForm.Status != "paid" {
		t.Errorf("form not passed through: %+v", gotForm)
	}
}

func TestInvoiceCreateAction_RerendersOnValidationFailure(t *testing.T) {
	svc := &fakeService{
		createFn: func(ctx context.Context, form core.InvoiceForm) *app.ActionResult {
			return &app.ActionResult{
				Errors: core.FieldErrors{
					"customerId": {core.MsgSelectCustomer},
					"amount":     {core.MsgAmountGtZero},
				},
				Message: app.MsgCreateMissingFields,
			}
		},
	}

	rr := postForm(t, newTestHandler(svc), "/invoices/new", url.Values{
		"amount": {"abc"},
		"status": {"paid"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected form re-render with 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		core.MsgSelectCustomer,
		core.MsgAmountGtZero,
		app.MsgCreateMissingFields,
		`value="abc"`, // the submitted amount survives the round trip
	} {
		if !strings.Contains(body, want) {
			t.Errorf("form body missing %q", want)
		}
	}
}

func TestInvoiceEditPage(t *testing.T) {
	svc := &fakeService{
		invoiceFormFn: func(ctx context.Context, id string) (*app.InvoiceFormResult, error) {
			return &app.InvoiceFormResult{
				Invoice: &core.Invoice{
					ID:          id,
					CustomerID:  testCustomerID,
					AmountCents: 12500,
					Status:      core.StatusPaid,
					Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				},
				Customers: []core.CustomerField{{ID: testCustomerID, Name: "Alice Archer"}},
			}, nil
		},
	}

	rr := doGet(t, newTestHandler(svc), "/invoices/inv-1/edit")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"Edit Invoice", `value="125.00"`, "Alice Archer", `action="/invoices/inv-1/edit"`} {
		if !strings.Contains(body, want) {
			t.Errorf("edit form missing %q", want)
		}
	}
}

func TestInvoiceEditPage_NotFound(t *testing.T) {
	rr := doGet(t, newTestHandler(&fakeService{}), "/invoices/no-such-id/edit")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Could not find the requested invoice.") {
		t.Errorf("expected invoice 404 page, got: %s", rr.Body.String())
	}
}

func TestInvoiceUpdateAction_RedirectsOnSuccess(t *testing.T) {
	var gotID string
	svc := &fakeService{
		updateFn: func(ctx context.Context, id string, form core.InvoiceForm) *app.ActionResult {
			gotID = id
			return nil
		},
	}

	rr := postForm(t, newTestHandler(svc), "/invoices/inv-7/edit", url.Values{
		"customerId": {testCustomerID},
		"amount":     {"99"},
		"status":     {"pending"},
	})

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/invoices?flash_success=Invoice+updated" {
		t.Errorf("unexpected redirect target %q", loc)
	}
	if gotID != "inv-7" {
		t.Errorf("expected update of inv-7, got %q", gotID)
	}
}

func TestInvoiceDeleteAction(t *testing.T) {
	t.Run("success redirects silently", func(t *testing.T) {
		var gotID string
		svc := &fakeService{
			deleteFn: func(ctx context.Context, id string) *app.ActionResult {
				gotID = id
				return nil
			},
		}

		rr := postForm(t, newTestHandler(svc), "/invoices/inv-3/delete", url.Values{})

		if rr.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/invoices" {
			t.Errorf("unexpected redirect target %q", loc)
		}
		if gotID != "inv-3" {
			t.Errorf("expected delete of inv-3, got %q", gotID)
		}
	})

	t.Run("failure carries flash error", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(ctx context.Context, id string) *app.ActionResult {
				return &app.ActionResult{Message: app.MsgDeleteDBError}
			},
		}

		rr := postForm(t, newTestHandler(svc), "/invoices/inv-3/delete", url.Values{})

		if rr.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rr.Code)
		}
		loc := rr.Header().Get("Location")
		if !strings.Contains(loc, "flash_error=") || !strings.Contains(loc, url.QueryEscape(app.MsgDeleteDBError)) {
			t.Errorf("expected flash error redirect, got %q", loc)
		}
	})
}

func TestInvoicesExport(t *testing.T) {
	svc := &fakeService{
		exportFn: func(ctx context.Context, query string) ([]core.InvoiceRow, error) {
			return []core.InvoiceRow{
				{
					ID:           "inv-1",
					AmountCents:  1234,
					Date:         time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC),
					Status:       core.StatusPaid,
					CustomerName: "=SUM(A1)",
					Email:        "alice@archer.dev",
				},
			}, nil
		},
	}

	rr := doGet(t, newTestHandler(svc), "/invoices/export")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected CSV content type, got %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="invoices.csv"`) {
		t.Errorf("expected attachment disposition, got %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "Customer,Email,Amount,Date,Status" {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "'=SUM(A1)") {
		t.Errorf("formula cell not neutralized: %s", lines[1])
	}
	if !strings.Contains(lines[1], "$12.34") || !strings.Contains(lines[1], "2024-10-04") {
		t.Errorf("unexpected CSV row: %s", lines[1])
	}
}

func TestBuildPageLinks(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		current int
		numbers []string
		want    []pageLink
	}{
		{
			name:    "three pages on page two",
			current: 2,
			numbers: []string{"1", "2", "3"},
			want: []pageLink{
				{Label: "1", URL: "/invoices"},
				{Label: "2", Current: true},
				{Label: "3", URL: "/invoices?page=3"},
			},
		},
		{
			name:    "ellipsis becomes gap",
			current: 10,
			numbers: []string{"1", core.Ellipsis, "9", "10"},
			want: []pageLink{
				{Label: "1", URL: "/invoices"},
				{Gap: true},
				{Label: "9", URL: "/invoices?page=9"},
				{Label: "10", Current: true},
			},
		},
		{
			name:    "query carried into every link",
			query:   "acme",
			current: 1,
			numbers: []string{"1", "2"},
			want: []pageLink{
				{Label: "1", Current: true},
				{Label: "2", URL: "/invoices?page=2&query=acme"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPageLinks(tt.query, tt.current, tt.numbers)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d links, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("link %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestCSVSafe(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Archer", "Alice Archer"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1234", "'+1234"},
		{"-cmd", "'-cmd"},
		{"@import", "'@import"},
		{"\tpadded", "'\tpadded"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := csvSafe(tt.in); got != tt.want {
			t.Errorf("csvSafe(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
