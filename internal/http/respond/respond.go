// Package respond maps pipeline outcomes onto HTTP responses shared
// by every mutation handler.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/acme/internal/action"
)

// Body is the wire shape of every mutation response: field errors and
// message on failure, the listing route to navigate to on success.
type Body struct {
	Message    string              `json:"message,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	RedirectTo string              `json:"redirectTo,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Outcome writes the HTTP rendering of a pipeline outcome.
func Outcome(w http.ResponseWriter, out action.Outcome) {
	body := Body{
		Message:    out.Message,
		Errors:     out.FieldErrors,
		RedirectTo: out.Redirect,
	}

	switch out.Kind {
	case action.Success:
		JSON(w, http.StatusOK, body)
	case action.Invalid:
		JSON(w, http.StatusUnprocessableEntity, body)
	case action.NoChange:
		JSON(w, http.StatusOK, body)
	case action.NotFound:
		JSON(w, http.StatusNotFound, body)
	case action.DomainError:
		JSON(w, http.StatusConflict, body)
	case action.StorageFault:
		JSON(w, http.StatusInternalServerError, body)
	default:
		JSON(w, http.StatusInternalServerError, Body{Message: "internal error"})
	}
}
