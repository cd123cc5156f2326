package team

import (
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/form"
)

// ErrNotFound is returned when a team member id does not exist.
var ErrNotFound = errors.New("team member not found")

// Member represents a dashboard user. Password stays empty at
// creation; it is set later through a separate flow.
type Member struct {
	ID       uuid.UUID
	Name     string
	Email    string
	RoleID   *uuid.UUID
	RoleName string // loaded via JOIN in list reads
}

// Role is reference data: assignable but never created or deleted
// from here.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Params is the typed value bundle of a validated member submission.
type Params struct {
	Name   string
	Email  string
	RoleID uuid.UUID
}

// ParseForm validates a raw team-member submission. Pure; any field
// failure rejects the whole submission.
func ParseForm(values form.Values) (Params, form.Errors) {
	var params Params

	errs := form.Errors{}

	if name := values.Get("name"); name == "" {
		errs.Add("name", "Please enter a name.")
	} else {
		params.Name = name
	}

	if email := values.Get("email"); !form.ValidEmail(email) {
		errs.Add("email", "Please enter a valid email.")
	} else {
		params.Email = email
	}

	roleID, err := uuid.Parse(values.Get("role_id"))
	if err != nil {
		errs.Add("role_id", "Please select a role.")
	} else {
		params.RoleID = roleID
	}

	if errs.Any() {
		return Params{}, errs
	}

	return params, nil
}
