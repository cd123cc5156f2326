package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/team"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateMember(ctx context.Context, m *team.Member) error {
	query := `
		INSERT INTO users (name, email, password, role_id)
		VALUES ($1, $2, '', $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, m.Name, m.Email, m.RoleID).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("creating member: %w", err)
	}

	return nil
}

func (s *Store) GetMember(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	query := `
		SELECT id, name, email, role_id
		FROM users
		WHERE id = $1
	`

	var m team.Member

	err := s.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.RoleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, team.ErrNotFound
		}

		return nil, fmt.Errorf("getting member: %w", err)
	}

	return &m, nil
}

func (s *Store) UpdateMemberRole(ctx context.Context, id, roleID uuid.UUID) error {
	query := `
		UPDATE users
		SET role_id = $1
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, roleID, id)
	if err != nil {
		return fmt.Errorf("updating member role: %w", err)
	}

	return nil
}

func (s *Store) DeleteMember(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}

	return nil
}

func (s *Store) ListMembers(ctx context.Context) ([]*team.Member, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role_id, COALESCE(r.name, '')
		FROM users u
		LEFT JOIN roles r ON u.role_id = r.id
		ORDER BY u.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []*team.Member

	for rows.Next() {
		var m team.Member

		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.RoleID, &m.RoleName); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}

		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return members, nil
}

func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var taken bool

	if err := s.db.QueryRowContext(ctx, query, email).Scan(&taken); err != nil {
		return false, fmt.Errorf("checking email: %w", err)
	}

	return taken, nil
}

func (s *Store) ListRoles(ctx context.Context) ([]*team.Role, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM roles
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []*team.Role

	for rows.Next() {
		var r team.Role

		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}

		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating role rows: %w", err)
	}

	return roles, nil
}
