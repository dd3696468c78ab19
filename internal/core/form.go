package core

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validation messages shown next to the offending form field.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountGtZero   = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// InvoiceForm carries the raw string values submitted by the invoice form.
// Id and date are never user input: ids are generated at insert time and
// the date is stamped server-side on create.
type InvoiceForm struct {
	CustomerID string `validate:"required"`
	Amount     string `validate:"required,dollars_gt_zero"`
	Status     string `validate:"required,oneof=pending paid"`
}

// ValidatedInvoice holds the typed field values after a successful Parse.
type ValidatedInvoice struct {
	CustomerID  string
	AmountCents Cents
	Status      InvoiceStatus
}

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Field returns the messages for one field, nil when the field is clean.
func (fe FieldErrors) Field(name string) []string {
	if fe == nil {
		return nil
	}
	return fe[name]
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The amount arrives as a string; it must parse as a decimal dollar
	// value and be strictly positive.
	_ = v.RegisterValidation("dollars_gt_zero", func(fl validator.FieldLevel) bool {
		cents, err := ParseDollars(fl.Field().String())
		return err == nil && cents > 0
	})
	return v
}

// Parse validates the submitted values and converts them into typed invoice
// fields. On failure it returns the per-field messages and no value.
func (f InvoiceForm) Parse() (ValidatedInvoice, FieldErrors) {
	if err := formValidator.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		errors.As(err, &verrs)
		fieldErrs := FieldErrors{}
		for _, fe := range verrs {
			switch fe.Field() {
			case "CustomerID":
				fieldErrs.add("customerId", MsgSelectCustomer)
			case "Amount":
				fieldErrs.add("amount", MsgAmountGtZero)
			case "Status":
				fieldErrs.add("status", MsgSelectStatus)
			}
		}
		return ValidatedInvoice{}, fieldErrs
	}

	cents, _ := ParseDollars(f.Amount) // validated above
	return ValidatedInvoice{
		CustomerID:  f.CustomerID,
		AmountCents: cents,
		Status:      InvoiceStatus(f.Status),
	}, nil
}
