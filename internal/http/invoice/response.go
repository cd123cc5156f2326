package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/invoice"
)

type invoiceResponse struct {
	ID         uuid.UUID      `json:"id"`
	CustomerID uuid.UUID      `json:"customer_id"`
	Amount     int64          `json:"amount"`
	Status     invoice.Status `json:"status"`
	Date       string         `json:"date"`
}

type listRowResponse struct {
	invoiceResponse
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date.Format(time.DateOnly),
	}
}

func toResponseList(rows []*invoice.ListRow) []listRowResponse {
	resp := make([]listRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = listRowResponse{
			invoiceResponse: toResponse(&row.Invoice),
			CustomerName:    row.CustomerName,
			CustomerEmail:   row.CustomerEmail,
		}
	}

	return resp
}
