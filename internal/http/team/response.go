package team

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/team"
)

type memberResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	RoleID   *uuid.UUID `json:"role_id,omitempty"`
	RoleName string     `json:"role_name,omitempty"`
}

type roleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

func toMemberList(members []*team.Member) []memberResponse {
	resp := make([]memberResponse, len(members))
	for i, m := range members {
		resp[i] = memberResponse{
			ID:       m.ID,
			Name:     m.Name,
			Email:    m.Email,
			RoleID:   m.RoleID,
			RoleName: m.RoleName,
		}
	}

	return resp
}

func toRoleList(roles []*team.Role) []roleResponse {
	resp := make([]roleResponse, len(roles))
	for i, r := range roles {
		resp[i] = roleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
	}

	return resp
}
