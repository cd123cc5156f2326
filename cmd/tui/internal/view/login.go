package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/acme/internal/auth"
)

// SignedInMsg tells the root model a session was established.
type SignedInMsg struct {
	Session *auth.Session
}

type LoginModel struct {
	CommonModel
	authService *auth.Service

	form    *huh.Form
	waiting bool
	status  string

	formEmail    string
	formPassword string
}

func NewLoginModel(authSvc *auth.Service) LoginModel {
	m := LoginModel{authService: authSvc}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.formEmail),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.formPassword),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Title() string     { return "Sign In" }
func (m LoginModel) ShortHelp() string { return "Enter: submit | Esc: back" }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

	case loginResultMsg:
		m.waiting = false
		if msg.err != nil {
			var loginErr *auth.LoginError
			if errors.As(msg.err, &loginErr) {
				m.status = loginErr.Message
			} else {
				m.status = fmt.Sprintf("Unexpected error: %v", msg.err)
			}

			m.formPassword = ""
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		session := msg.session

		return m, func() tea.Msg { return SignedInMsg{Session: session} }
	}

	if m.waiting {
		return m, nil
	}

	frm, cmd := m.form.Update(msg)
	if f, ok := frm.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.waiting = true

	return m, m.loginCmd()
}

func (m LoginModel) View() string {
	if m.waiting {
		return lipgloss.NewStyle().Padding(2).Render("Signing in...")
	}

	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("Sign In\n\n" + content)
}

type loginResultMsg struct {
	session *auth.Session
	err     error
}

func (m LoginModel) loginCmd() tea.Cmd {
	creds := auth.Credentials{
		Email:    m.form.GetString("email"),
		Password: m.form.GetString("password"),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		session, err := m.authService.Login(ctx, creds)

		return loginResultMsg{session: session, err: err}
	}
}
