package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/acme/internal/auth"
	"github.com/MrJamesThe3rd/acme/internal/config"
	"github.com/MrJamesThe3rd/acme/internal/customer"
	customerStore "github.com/MrJamesThe3rd/acme/internal/customer/store"
	"github.com/MrJamesThe3rd/acme/internal/database"
	acmeHttp "github.com/MrJamesThe3rd/acme/internal/http"
	authHandler "github.com/MrJamesThe3rd/acme/internal/http/auth"
	customerHandler "github.com/MrJamesThe3rd/acme/internal/http/customer"
	invoiceHandler "github.com/MrJamesThe3rd/acme/internal/http/invoice"
	teamHandler "github.com/MrJamesThe3rd/acme/internal/http/team"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/acme/internal/invoice/store"
	"github.com/MrJamesThe3rd/acme/internal/team"
	teamStore "github.com/MrJamesThe3rd/acme/internal/team/store"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	registry := views.NewRegistry()

	var (
		invoiceService  = invoice.NewService(invoiceStore.New(db), registry)
		teamService     = team.NewService(teamStore.New(db), registry)
		customerService = customer.NewService(customerStore.New(db))
		authService     = auth.NewService(
			auth.NewHTTPProvider(cfg.Auth.ProviderURL, cfg.Auth.ProviderToken),
			cfg.App.Name,
			[]byte(cfg.Auth.SessionSecret),
			cfg.Auth.SessionTTL,
		)
	)

	var (
		invoicesH  = invoiceHandler.NewHandler(invoiceService, registry)
		teamH      = teamHandler.NewHandler(teamService, registry)
		customersH = customerHandler.NewHandler(customerService)
		authH      = authHandler.NewHandler(authService)
	)

	router := acmeHttp.New(cfg.Server.AllowedOrigins, invoicesH, teamH, customersH, authH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
