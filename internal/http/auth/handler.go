package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/acme/internal/auth"
	"github.com/MrJamesThe3rd/acme/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
}

type sessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	creds := auth.Credentials{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	session, err := h.svc.Login(r.Context(), creds)
	if err != nil {
		var loginErr *auth.LoginError
		if errors.As(err, &loginErr) {
			respond.JSON(w, http.StatusUnauthorized, respond.Body{Message: loginErr.Message})
			return
		}

		// Not a classified login failure: a defect, not a form error.
		slog.Error("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	respond.JSON(w, http.StatusOK, sessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}
