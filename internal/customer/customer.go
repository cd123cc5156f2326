package customer

import "github.com/google/uuid"

// Customer is referenced by invoices and never mutated here.
type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}
