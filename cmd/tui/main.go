package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/acme/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/acme/internal/auth"
	"github.com/MrJamesThe3rd/acme/internal/config"
	"github.com/MrJamesThe3rd/acme/internal/customer"
	customerStore "github.com/MrJamesThe3rd/acme/internal/customer/store"
	"github.com/MrJamesThe3rd/acme/internal/database"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/acme/internal/invoice/store"
	"github.com/MrJamesThe3rd/acme/internal/team"
	teamStore "github.com/MrJamesThe3rd/acme/internal/team/store"
	"github.com/MrJamesThe3rd/acme/internal/views"
)

type model struct {
	invoiceService  *invoice.Service
	teamService     *team.Service
	customerService *customer.Service
	authService     *auth.Service

	currentView View
	session     *auth.Session

	loginView    view.LoginModel
	invoicesView view.InvoicesModel
	teamView     view.TeamModel
}

type View int

const (
	ViewMenu     View = 0
	ViewLogin    View = 1
	ViewInvoices View = 2
	ViewTeam     View = 3
)

func initialModel() model {
	_ = godotenv.Load()

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

	registry := views.NewRegistry()

	invoiceSvc := invoice.NewService(invoiceStore.New(db), registry)
	teamSvc := team.NewService(teamStore.New(db), registry)
	customerSvc := customer.NewService(customerStore.New(db))
	authSvc := auth.NewService(
		auth.NewHTTPProvider(cfg.Auth.ProviderURL, cfg.Auth.ProviderToken),
		cfg.App.Name,
		[]byte(cfg.Auth.SessionSecret),
		cfg.Auth.SessionTTL,
	)

	return model{
		invoiceService:  invoiceSvc,
		teamService:     teamSvc,
		customerService: customerSvc,
		authService:     authSvc,
		currentView:     ViewMenu,
		loginView:       view.NewLoginModel(authSvc),
		invoicesView:    view.NewInvoicesModel(invoiceSvc, customerSvc),
		teamView:        view.NewTeamModel(teamSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLogin
				m.loginView = view.NewLoginModel(m.authService)

				return m, m.loginView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService, m.customerService)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewTeam
				m.teamView = view.NewTeamModel(m.teamService)

				return m, m.teamView.Init()
			}
		}
	case view.SignedInMsg:
		m.session = msg.Session
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewTeam:
		var newModel tea.Model
		newModel, cmd = m.teamView.Update(msg)
		m.teamView = newModel.(view.TeamModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		signedIn := "not signed in"
		if m.session != nil {
			signedIn = "signed in"
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"Acme Dashboard (" + signedIn + ")\n\n" +
				"1. Sign In\n" +
				"2. Invoices\n" +
				"3. Team Members\n\n" +
				"q. Quit",
		)
	case ViewLogin:
		return m.loginView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewTeam:
		return m.teamView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
