package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, CURRENT_DATE)
		RETURNING id, date
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.CustomerID,
		inv.Amount,
		inv.Status,
	).Scan(&inv.ID, &inv.Date)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`

	var inv invoice.Invoice

	var statusStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &statusStr, &inv.Date,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

// UpdateInvoice overwrites the mutable fields only; id and date are
// never rewritten.
func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query,
		inv.CustomerID,
		inv.Amount,
		inv.Status,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.ListRow, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		ORDER BY i.date DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var list []*invoice.ListRow

	for rows.Next() {
		var row invoice.ListRow

		var statusStr string

		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &statusStr, &row.Date,
			&row.CustomerName, &row.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		row.Status = invoice.Status(statusStr)
		list = append(list, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return list, nil
}
