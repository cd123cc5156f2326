package team

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/action"
	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=team
type Repository interface {
	CreateMember(ctx context.Context, m *Member) error
	GetMember(ctx context.Context, id uuid.UUID) (*Member, error)
	UpdateMemberRole(ctx context.Context, id, roleID uuid.UUID) error
	DeleteMember(ctx context.Context, id uuid.UUID) error

	ListMembers(ctx context.Context) ([]*Member, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	ListRoles(ctx context.Context) ([]*Role, error)
}

type Service struct {
	repo  Repository
	views *views.Registry
}

func NewService(repo Repository, registry *views.Registry) *Service {
	return &Service{repo: repo, views: registry}
}

// Add validates and creates a team member. Email uniqueness is
// checked before the write; a duplicate is a business-rule rejection,
// not a storage fault.
func (s *Service) Add(ctx context.Context, values form.Values) action.Outcome {
	params, errs := ParseForm(values)
	if errs.Any() {
		return action.Rejected("Missing fields. Failed to add team member.", errs)
	}

	taken, err := s.repo.EmailTaken(ctx, params.Email)
	if err != nil {
		return s.fault("add team member", uuid.Nil, err)
	}

	if taken {
		return action.RuleViolation("a user with this email already exists")
	}

	m := &Member{
		Name:   params.Name,
		Email:  params.Email,
		RoleID: &params.RoleID,
	}

	if err := s.repo.CreateMember(ctx, m); err != nil {
		return s.fault("add team member", uuid.Nil, err)
	}

	s.views.Invalidate(views.Team)

	return action.Succeeded(views.TeamRoute)
}

// UpdateRole assigns a member a new role. Assigning the role the
// member already holds is reported as a no-op without writing.
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, values form.Values) action.Outcome {
	roleID, err := uuid.Parse(values.Get("role_id"))
	if err != nil {
		errs := form.Errors{}
		errs.Add("role_id", "Please select a role.")

		return action.Rejected("Missing fields. Failed to update role.", errs)
	}

	current, err := s.repo.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return action.Missing("Team member not found.")
		}

		return s.fault("fetch team member", id, err)
	}

	if current.RoleID != nil && *current.RoleID == roleID {
		return action.Unchanged()
	}

	if err := s.repo.UpdateMemberRole(ctx, id, roleID); err != nil {
		return s.fault("update role", id, err)
	}

	s.views.Invalidate(views.Team)

	return action.Succeeded(views.TeamRoute)
}

// Remove deletes a single member. Removing an id that no longer
// exists is not an error.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) action.Outcome {
	if err := s.repo.DeleteMember(ctx, id); err != nil {
		return s.fault("remove team member", id, err)
	}

	s.views.Invalidate(views.Team)

	return action.Succeeded(views.TeamRoute)
}

func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) Roles(ctx context.Context) ([]*Role, error) {
	return s.repo.ListRoles(ctx)
}

func (s *Service) fault(op string, id uuid.UUID, err error) action.Outcome {
	slog.Error("team storage fault", "op", op, "id", id, "error", err)

	return action.Faulted("Database error. Failed to " + op + ".")
}
