package core

import "errors"

// ErrNotFound is returned when a row lookup by id matches nothing.
// Callers distinguish it from infrastructure failures with errors.Is.
var ErrNotFound = errors.New("not found")

type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether s is one of the two states an invoice can be in.
func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}
