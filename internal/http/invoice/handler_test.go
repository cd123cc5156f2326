package invoice_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	invoiceHandler "github.com/MrJamesThe3rd/acme/internal/http/invoice"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

func newRouter(repo invoice.Repository, registry *views.Registry) http.Handler {
	svc := invoice.NewService(repo, registry)
	h := invoiceHandler.NewHandler(svc, registry)

	router := chi.NewRouter()
	router.Route("/invoices", h.Routes)

	return router
}

func postForm(t *testing.T, router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	router := newRouter(repo, views.NewRegistry())

	rec := postForm(t, router, "/invoices", url.Values{
		"customerId": {uuid.NewString()},
		"amount":     {"0"},
		"status":     {"pending"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, body.Errors["amount"])
}

// A committed create invalidates the cached list view, so the next
// list read reflects the new row without a manual refresh.
func TestHandler_ListReflectsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	created := &invoice.ListRow{
		Invoice: invoice.Invoice{
			ID:         uuid.New(),
			CustomerID: customerID,
			Amount:     4999,
			Status:     invoice.StatusPending,
			Date:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		CustomerName:  "Acme Corp",
		CustomerEmail: "billing@acme.test",
	}

	repo := invoice.NewMockRepository(ctrl)

	// First read computes an empty list; the second is served from
	// cache, so the store sees exactly one list query.
	firstList := repo.EXPECT().ListInvoices(gomock.Any()).Return(nil, nil)

	repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)

	// After the write the cache is stale and the list recomputes.
	repo.EXPECT().ListInvoices(gomock.Any()).After(firstList).Return([]*invoice.ListRow{created}, nil)

	router := newRouter(repo, views.NewRegistry())

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices", nil))

		return rec
	}

	rec := get()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = get()
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postForm(t, router, "/invoices", url.Values{
		"customerId": {customerID.String()},
		"amount":     {"49.99"},
		"status":     {"pending"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		RedirectTo string `json:"redirectTo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/dashboard/invoices", body.RedirectTo)

	rec = get()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Corp")
	assert.Contains(t, rec.Body.String(), "4999")
}

func TestHandler_UpdateNoChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	customerID := uuid.New()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(&invoice.Invoice{
		ID:         id,
		CustomerID: customerID,
		Amount:     4999,
		Status:     invoice.StatusPending,
	}, nil)

	router := newRouter(repo, views.NewRegistry())

	req := httptest.NewRequest(http.MethodPut, "/invoices/"+id.String(),
		strings.NewReader(url.Values{
			"customerId": {customerID.String()},
			"amount":     {"49.99"},
			"status":     {"pending"},
		}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No changes detected.")
}

func TestHandler_DeleteBadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	router := newRouter(repo, views.NewRegistry())

	req := httptest.NewRequest(http.MethodDelete, "/invoices/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
