package invoice

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/http/respond"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

type Handler struct {
	svc   *invoice.Service
	views *views.Registry
}

func NewHandler(svc *invoice.Service, registry *views.Registry) *Handler {
	return &Handler{svc: svc, views: registry}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// formValues flattens the submitted form into the raw field map the
// pipeline validates.
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

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	values, err := formValues(r)
	if err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	respond.Outcome(w, h.svc.Create(r.Context(), values))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	respond.Outcome(w, h.svc.Update(r.Context(), id, values))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	respond.Outcome(w, h.svc.Delete(r.Context(), id))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.views.Get(views.Invoices); ok {
		respond.JSON(w, http.StatusOK, cached)
		return
	}

	rows, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := toResponseList(rows)
	h.views.Put(views.Invoices, resp)

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}
