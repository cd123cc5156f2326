package invoice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/action"
	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	ListInvoices(ctx context.Context) ([]*ListRow, error)
}

type Service struct {
	repo  Repository
	views *views.Registry
}

func NewService(repo Repository, registry *views.Registry) *Service {
	return &Service{repo: repo, views: registry}
}

// Create runs the full pipeline for a new invoice: validate, write,
// invalidate the list view. The date is assigned by the store at
// insert time.
func (s *Service) Create(ctx context.Context, values form.Values) action.Outcome {
	params, errs := ParseForm(values)
	if errs.Any() {
		return action.Rejected("Missing fields. Failed to create invoice.", errs)
	}

	inv := &Invoice{
		CustomerID: params.CustomerID,
		Amount:     params.Amount,
		Status:     params.Status,
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return s.fault("create invoice", uuid.Nil, err)
	}

	s.views.Invalidate(views.Invoices)

	return action.Succeeded(views.InvoicesRoute)
}

// Update edits an existing invoice. The current row is fetched first
// and compared field by field against the proposed values; an
// identical submission is reported as a no-op without writing.
func (s *Service) Update(ctx context.Context, id uuid.UUID, values form.Values) action.Outcome {
	params, errs := ParseForm(values)
	if errs.Any() {
		return action.Rejected("Missing fields. Failed to edit invoice.", errs)
	}

	current, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return action.Missing("Invoice not found.")
		}

		return s.fault("fetch invoice", id, err)
	}

	if current.CustomerID == params.CustomerID &&
		current.Amount == params.Amount &&
		current.Status == params.Status {
		return action.Unchanged()
	}

	updated := &Invoice{
		ID:         id,
		CustomerID: params.CustomerID,
		Amount:     params.Amount,
		Status:     params.Status,
	}

	if err := s.repo.UpdateInvoice(ctx, updated); err != nil {
		return s.fault("edit invoice", id, err)
	}

	s.views.Invalidate(views.Invoices)

	return action.Succeeded(views.InvoicesRoute)
}

// Delete removes a single invoice. Deleting an id that no longer
// exists is not an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) action.Outcome {
	if err := s.repo.DeleteInvoice(ctx, id); err != nil {
		return s.fault("delete invoice", id, err)
	}

	s.views.Invalidate(views.Invoices)

	return action.Succeeded(views.InvoicesRoute)
}

func (s *Service) List(ctx context.Context) ([]*ListRow, error) {
	return s.repo.ListInvoices(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

// fault logs the raw storage error for operators and returns the
// generic outcome shown to the caller.
func (s *Service) fault(op string, id uuid.UUID, err error) action.Outcome {
	slog.Error("invoice storage fault", "op", op, "id", id, "error", err)

	return action.Faulted("Database error. Failed to " + op + ".")
}
