package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/acme/internal/action"
	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/team"
)

type teamState int

const (
	teamStateBrowse teamState = iota
	teamStateAdd
	teamStateRole
	teamStateConfirmRemove
)

type TeamModel struct {
	CommonModel
	teamService *team.Service

	state   teamState
	table   table.Model
	members []*team.Member
	roles   []*team.Role
	form    *huh.Form

	loading bool
	err     error
	status  string

	formName  string
	formEmail string
	formRole  string
}

func NewTeamModel(teamSvc *team.Service) TeamModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 32},
		{Title: "Role", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TeamModel{
		teamService: teamSvc,
		table:       t,
		loading:     true,
	}
}

func (m TeamModel) Title() string { return "Team Members" }

func (m TeamModel) ShortHelp() string {
	switch m.state {
	case teamStateAdd, teamStateRole:
		return "Navigate form | Esc: cancel"
	case teamStateConfirmRemove:
		return "y: remove | n: keep"
	}

	return "Esc: back | a: add | o: change role | d: remove | r: refresh"
}

func (m TeamModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TeamModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case teamLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.members = msg.members
		m.roles = msg.roles
		m.refreshTable()

		return m, nil

	case teamSavedMsg:
		m.status = StatusLine(msg.outcome)
		m.state = teamStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.outcome.Kind == action.Success {
			return m, m.loadCmd()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case teamStateBrowse:
		return m.updateBrowse(msg)
	case teamStateAdd, teamStateRole:
		return m.updateForm(msg)
	case teamStateConfirmRemove:
		return m.updateConfirmRemove(msg)
	}

	return m, nil
}

func (m TeamModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAdd()
		case "o":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.members) {
				return m.enterRole(m.members[idx])
			}
		case "d":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.members) {
				m.state = teamStateConfirmRemove
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TeamModel) roleOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(m.roles))
	for _, r := range m.roles {
		options = append(options, huh.NewOption(r.Name, r.ID.String()))
	}

	return options
}

func (m TeamModel) enterAdd() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formEmail = ""
	m.formRole = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Enter member's name").
				Value(&m.formName),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("Enter member's email").
				Value(&m.formEmail),

			huh.NewSelect[string]().
				Key("role_id").
				Title("Role").
				Options(m.roleOptions()...).
				Value(&m.formRole),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = teamStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m TeamModel) enterRole(member *team.Member) (tea.Model, tea.Cmd) {
	m.formRole = ""
	if member.RoleID != nil {
		m.formRole = member.RoleID.String()
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("role_id").
				Title("Role").
				Options(m.roleOptions()...).
				Value(&m.formRole),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = teamStateRole
	m.table.Blur()

	return m, m.form.Init()
}

func (m TeamModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = teamStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	frm, cmd := m.form.Update(msg)
	if f, ok := frm.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == teamStateAdd {
		return m, m.addCmd()
	}

	return m, m.roleCmd()
}

func (m TeamModel) updateConfirmRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		idx := m.table.Cursor()
		m.state = teamStateBrowse

		if idx >= 0 && idx < len(m.members) {
			return m, m.removeCmd(m.members[idx])
		}
	case "n", "esc":
		m.state = teamStateBrowse
	}

	return m, nil
}

func (m TeamModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading team...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if (m.state == teamStateAdd || m.state == teamStateRole) && m.form != nil {
		title := "Add Member"
		if m.state == teamStateRole {
			title = "Change Role"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.state == teamStateConfirmRemove {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("Remove selected member? (y/n)") + "\n" + content
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TeamModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.members))
	for _, member := range m.members {
		roleName := member.RoleName
		if roleName == "" {
			roleName = "No role"
		}

		rows = append(rows, table.Row{member.Name, member.Email, roleName})
	}

	m.table.SetRows(rows)
}

// Messages

type teamLoadedMsg struct {
	members []*team.Member
	roles   []*team.Role
	err     error
}

func (m TeamModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		members, err := m.teamService.List(ctx)
		if err != nil {
			return teamLoadedMsg{err: err}
		}

		roles, err := m.teamService.Roles(ctx)

		return teamLoadedMsg{members: members, roles: roles, err: err}
	}
}

type teamSavedMsg struct {
	outcome action.Outcome
}

func (m TeamModel) addCmd() tea.Cmd {
	values := form.Values{
		"name":    m.form.GetString("name"),
		"email":   m.form.GetString("email"),
		"role_id": m.form.GetString("role_id"),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return teamSavedMsg{outcome: m.teamService.Add(ctx, values)}
	}
}

func (m TeamModel) roleCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.members) {
		return nil
	}

	member := m.members[idx]
	values := form.Values{"role_id": m.form.GetString("role_id")}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return teamSavedMsg{outcome: m.teamService.UpdateRole(ctx, member.ID, values)}
	}
}

func (m TeamModel) removeCmd(member *team.Member) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return teamSavedMsg{outcome: m.teamService.Remove(ctx, member.ID)}
	}
}
