package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/acme/internal/action"
	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

func newRegistry() *views.Registry {
	registry := views.NewRegistry()
	registry.Put(views.Invoices, "cached")

	return registry
}

func viewFresh(registry *views.Registry) bool {
	_, ok := registry.Get(views.Invoices)
	return ok
}

func validValues(customerID uuid.UUID) form.Values {
	return form.Values{
		"customerId": customerID.String(),
		"amount":     "49.99",
		"status":     "pending",
	}
}

func TestService_Create(t *testing.T) {
	customerID := uuid.New()

	type testCase struct {
		name          string
		values        form.Values
		setupMock     func(m *invoice.MockRepository)
		wantKind      action.Kind
		wantViewFresh bool
	}

	tests := []testCase{
		{
			name:   "Success",
			values: validValues(customerID),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						assert.Equal(t, customerID, inv.CustomerID)
						assert.Equal(t, int64(4999), inv.Amount)
						assert.Equal(t, invoice.StatusPending, inv.Status)

						inv.ID = uuid.New()
						inv.Date = time.Now()

						return nil
					})
			},
			wantKind:      action.Success,
			wantViewFresh: false,
		},
		{
			name: "InvalidStatusNeverWrites",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "10",
				"status":     "overdue",
			},
			wantKind:      action.Invalid,
			wantViewFresh: true,
		},
		{
			name:   "StorageFault",
			values: validValues(customerID),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantKind:      action.StorageFault,
			wantViewFresh: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			registry := newRegistry()
			svc := invoice.NewService(repo, registry)

			out := svc.Create(context.Background(), tt.values)

			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.wantViewFresh, viewFresh(registry))

			if tt.wantKind == action.Success {
				assert.Equal(t, views.InvoicesRoute, out.Redirect)
			}

			if tt.wantKind == action.Invalid {
				assert.NotEmpty(t, out.FieldErrors)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()

	current := &invoice.Invoice{
		ID:         id,
		CustomerID: customerID,
		Amount:     4999,
		Status:     invoice.StatusPending,
		Date:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	type testCase struct {
		name          string
		values        form.Values
		setupMock     func(m *invoice.MockRepository)
		wantKind      action.Kind
		wantMessage   string
		wantViewFresh bool
	}

	tests := []testCase{
		{
			name:   "IdenticalValuesNoChange",
			values: validValues(customerID),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(current, nil)
			},
			wantKind:      action.NoChange,
			wantMessage:   "No changes detected.",
			wantViewFresh: true,
		},
		{
			name: "AmountDiffersProceeds",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "50.00",
				"status":     "pending",
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(current, nil)
				m.EXPECT().
					UpdateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						assert.Equal(t, id, inv.ID)
						assert.Equal(t, int64(5000), inv.Amount)
						return nil
					})
			},
			wantKind:      action.Success,
			wantViewFresh: false,
		},
		{
			name: "StatusDiffersProceeds",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "49.99",
				"status":     "paid",
			},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(current, nil)
				m.EXPECT().
					UpdateInvoice(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantKind:      action.Success,
			wantViewFresh: false,
		},
		{
			name:   "RowMissing",
			values: validValues(customerID),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(nil, invoice.ErrNotFound)
			},
			wantKind:      action.NotFound,
			wantViewFresh: true,
		},
		{
			name: "ValidationFailureSkipsConflictCheck",
			values: form.Values{
				"customerId": customerID.String(),
				"amount":     "0",
				"status":     "pending",
			},
			wantKind:      action.Invalid,
			wantViewFresh: true,
		},
		{
			name:   "WriteFault",
			values: form.Values{"customerId": customerID.String(), "amount": "60", "status": "paid"},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(current, nil)
				m.EXPECT().
					UpdateInvoice(gomock.Any(), gomock.Any()).
					Return(errors.New("constraint violation"))
			},
			wantKind:      action.StorageFault,
			wantViewFresh: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			registry := newRegistry()
			svc := invoice.NewService(repo, registry)

			out := svc.Update(context.Background(), id, tt.values)

			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.wantViewFresh, viewFresh(registry))

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, out.Message)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

		registry := newRegistry()
		svc := invoice.NewService(repo, registry)

		out := svc.Delete(context.Background(), id)

		require.Equal(t, action.Success, out.Kind)
		assert.False(t, viewFresh(registry))
	})

	t.Run("StorageFault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(errors.New("connection reset"))

		registry := newRegistry()
		svc := invoice.NewService(repo, registry)

		out := svc.Delete(context.Background(), id)

		require.Equal(t, action.StorageFault, out.Kind)
		assert.True(t, viewFresh(registry))
		assert.NotContains(t, out.Message, "connection reset")
	})
}
