package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/acme/internal/action"
	"github.com/MrJamesThe3rd/acme/internal/customer"
	"github.com/MrJamesThe3rd/acme/internal/form"
	"github.com/MrJamesThe3rd/acme/internal/invoice"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateForm
	invoicesStateConfirmDelete
)

type InvoicesModel struct {
	CommonModel
	invoiceService  *invoice.Service
	customerService *customer.Service

	state     invoicesState
	table     table.Model
	rows      []*invoice.ListRow
	customers []*customer.Customer
	form      *huh.Form

	// When editing, the invoice being edited; nil while creating.
	editing *invoice.ListRow

	loading bool
	err     error
	status  string

	// Form bindings: raw strings fed to the mutation pipeline.
	formCustomer string
	formAmount   string
	formStatus   string
}

func NewInvoicesModel(invoiceSvc *invoice.Service, customerSvc *customer.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 10},
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

	return InvoicesModel{
		invoiceService:  invoiceSvc,
		customerService: customerSvc,
		table:           t,
		loading:         true,
	}
}

func (m InvoicesModel) Title() string { return "Invoices" }

func (m InvoicesModel) ShortHelp() string {
	switch m.state {
	case invoicesStateForm:
		return "Navigate form | Esc: cancel"
	case invoicesStateConfirmDelete:
		return "y: delete | n: keep"
	}

	return "Esc: back | n: new | e: edit | d: delete | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.rows = msg.rows
		m.customers = msg.customers
		m.refreshTable()

		return m, nil

	case invoiceSavedMsg:
		m.status = StatusLine(msg.outcome)
		m.state = invoicesStateBrowse
		m.form = nil
		m.editing = nil
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
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStateForm:
		return m.updateForm(msg)
	case invoicesStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterForm(nil)
		case "e":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.rows) {
				return m.enterForm(m.rows[idx])
			}
		case "d":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.rows) {
				m.state = invoicesStateConfirmDelete
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) enterForm(editing *invoice.ListRow) (tea.Model, tea.Cmd) {
	m.editing = editing
	m.formCustomer = ""
	m.formAmount = ""
	m.formStatus = string(invoice.StatusPending)

	if editing != nil {
		m.formCustomer = editing.CustomerID.String()
		m.formAmount = PlainAmount(editing.Amount)
		m.formStatus = string(editing.Status)
	}

	options := make([]huh.Option[string], 0, len(m.customers))
	for _, c := range m.customers {
		options = append(options, huh.NewOption(c.Name, c.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("customerId").
				Title("Customer").
				Options(options...).
				Value(&m.formCustomer),

			huh.NewInput().
				Key("amount").
				Title("Amount (USD)").
				Placeholder("0.00").
				Value(&m.formAmount),

			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Pending", string(invoice.StatusPending)),
					huh.NewOption("Paid", string(invoice.StatusPaid)),
				).
				Value(&m.formStatus),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = invoicesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoicesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoicesStateBrowse
			m.form = nil
			m.editing = nil
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

	return m, m.saveCmd()
}

func (m InvoicesModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		idx := m.table.Cursor()
		m.state = invoicesStateBrowse

		if idx >= 0 && idx < len(m.rows) {
			return m, m.deleteCmd(m.rows[idx])
		}
	case "n", "esc":
		m.state = invoicesStateBrowse
	}

	return m, nil
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == invoicesStateForm && m.form != nil {
		title := "New Invoice"
		if m.editing != nil {
			title = "Edit Invoice"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.state == invoicesStateConfirmDelete {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("Delete selected invoice? (y/n)") + "\n" + content
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, row := range m.rows {
		rows = append(rows, table.Row{
			FormatDate(row.Date),
			row.CustomerName,
			row.CustomerEmail,
			FormatAmount(row.Amount),
			string(row.Status),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type invoicesLoadedMsg struct {
	rows      []*invoice.ListRow
	customers []*customer.Customer
	err       error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rows, err := m.invoiceService.List(ctx)
		if err != nil {
			return invoicesLoadedMsg{err: err}
		}

		customers, err := m.customerService.List(ctx)

		return invoicesLoadedMsg{rows: rows, customers: customers, err: err}
	}
}

type invoiceSavedMsg struct {
	outcome action.Outcome
}

func (m InvoicesModel) saveCmd() tea.Cmd {
	// Read back through the form: the model is copied between
	// updates, so the bound fields can lag behind what was typed.
	values := form.Values{
		"customerId": m.form.GetString("customerId"),
		"amount":     m.form.GetString("amount"),
		"status":     m.form.GetString("status"),
	}
	editing := m.editing

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing != nil {
			return invoiceSavedMsg{outcome: m.invoiceService.Update(ctx, editing.ID, values)}
		}

		return invoiceSavedMsg{outcome: m.invoiceService.Create(ctx, values)}
	}
}

func (m InvoicesModel) deleteCmd(row *invoice.ListRow) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceSavedMsg{outcome: m.invoiceService.Delete(ctx, row.ID)}
	}
}
