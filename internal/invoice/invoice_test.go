package invoice_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
)

func TestParseForm(t *testing.T) {
	customerID := uuid.New()

	type testCase struct {
		name       string
		values     form.Values
		wantParams invoice.Params
		wantErrs   form.Errors
	}

	tests := []testCase{
		{
			name: "Valid",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "49.99",
				"status":     "pending",
			},
			wantParams: invoice.Params{
				CustomerID: customerID,
				Amount:     4999,
				Status:     invoice.StatusPending,
			},
		},
		{
			name: "MissingCustomer",
			values: form.Values{
				"amount": "10",
				"status": "paid",
			},
			wantErrs: form.Errors{
				"customerId": {"Please select a customer."},
			},
		},
		{
			name: "ZeroAmount",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "0",
				"status":     "paid",
			},
			wantErrs: form.Errors{
				"amount": {"Please enter an amount greater than $0."},
			},
		},
		{
			name: "NegativeAmount",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "-5",
				"status":     "paid",
			},
			wantErrs: form.Errors{
				"amount": {"Please enter an amount greater than $0."},
			},
		},
		{
			name: "UnknownStatus",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "10",
				"status":     "overdue",
			},
			wantErrs: form.Errors{
				"status": {"Please select an invoice status."},
			},
		},
		{
			name:   "EverythingMissing",
			values: form.Values{},
			wantErrs: form.Errors{
				"customerId": {"Please select a customer."},
				"amount":     {"Please enter an amount greater than $0."},
				"status":     {"Please select an invoice status."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, errs := invoice.ParseForm(tt.values)

			if tt.wantErrs != nil {
				assert.Equal(t, tt.wantErrs, errs)
				assert.Equal(t, invoice.Params{}, params)

				return
			}

			require.False(t, errs.Any())
			assert.Equal(t, tt.wantParams, params)
		})
	}
}
