package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/http/respond"
	"github.com/MrJamesThe3rd/acme/internal/team"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

type Handler struct {
	svc   *team.Service
	views *views.Registry
}

func NewHandler(svc *team.Service, registry *views.Registry) *Handler {
	return &Handler{svc: svc, views: registry}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Patch("/{id}/role", h.updateRole)
	r.Delete("/{id}", h.remove)
}

// RoleRoutes serves the read-only roles reference data.
func (h *Handler) RoleRoutes(r chi.Router) {
	r.Get("/", h.roles)
}

func formValues(r *http.Request) (form.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	values := make(form.Values, len(r.PostForm))
	for field := range r.PostForm {
		values[field] = r.PostForm.Get(field)
	}

	return values, nil
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	values, err := formValues(r)
	if err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	respond.Outcome(w, h.svc.Add(r.Context(), values))
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	values, err := formValues(r)
	if err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	respond.Outcome(w, h.svc.UpdateRole(r.Context(), id, values))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	respond.Outcome(w, h.svc.Remove(r.Context(), id))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.views.Get(views.Team); ok {
		respond.JSON(w, http.StatusOK, cached)
		return
	}

	members, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := toMemberList(members)
	h.views.Put(views.Team, resp)

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) roles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.Roles(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, toRoleList(roles))
}
