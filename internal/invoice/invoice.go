package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/form"
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// ErrNotFound is returned when an invoice id does not exist.
var ErrNotFound = errors.New("invoice not found")

// Invoice represents a billed amount owed by a customer. Amount is
// stored in cents. ID and Date are set at creation and never rewritten.
type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64
	Status     Status
	Date       time.Time
}

// ListRow is an invoice joined with its customer, as the invoices
// list view renders it.
type ListRow struct {
	Invoice
	CustomerName  string
	CustomerEmail string
}

// Params is the typed value bundle a validated submission produces.
type Params struct {
	CustomerID uuid.UUID
	Amount     int64
	Status     Status
}

// ParseForm validates a raw invoice submission. It is pure: no store
// access, and any field failure rejects the whole submission.
func ParseForm(values form.Values) (Params, form.Errors) {
	var params Params

	errs := form.Errors{}

	customerID, err := uuid.Parse(values.Get("customerId"))
	if err != nil {
		errs.Add("customerId", "Please select a customer.")
	} else {
		params.CustomerID = customerID
	}

	amount, err := form.Cents(values.Get("amount"))
	if err != nil || amount <= 0 {
		errs.Add("amount", "Please enter an amount greater than $0.")
	} else {
		params.Amount = amount
	}

	switch status := Status(values.Get("status")); status {
	case StatusPending, StatusPaid:
		params.Status = status
	default:
		errs.Add("status", "Please select an invoice status.")
	}

	if errs.Any() {
		return Params{}, errs
	}

	return params, nil
}
