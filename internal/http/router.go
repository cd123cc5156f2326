package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authHandler "github.com/MrJamesThe3rd/acme/internal/http/auth"
	customerHandler "github.com/MrJamesThe3rd/acme/internal/http/customer"
	invoiceHandler "github.com/MrJamesThe3rd/acme/internal/http/invoice"
	teamHandler "github.com/MrJamesThe3rd/acme/internal/http/team"
)

func New(
	allowedOrigins []string,
	invoicesV1 *invoiceHandler.Handler,
	teamV1 *teamHandler.Handler,
	customersV1 *customerHandler.Handler,
	authV1 *authHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/invoices", invoicesV1.Routes)
		r.Route("/team", teamV1.Routes)
		r.Route("/roles", teamV1.RoleRoutes)
		r.Route("/customers", customersV1.Routes)
		r.Route("/auth", authV1.Routes)
	})

	return router
}
