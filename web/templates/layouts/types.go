package layouts

// AppLayoutData configures the page shell around every rendered page.
type AppLayoutData struct {
	Title     string
	ActiveNav string // "dashboard", "invoices", "customers"
	FlashMsg  string
	FlashKind string // "success", "error"
}
