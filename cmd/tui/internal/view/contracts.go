package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

type contractsState int

const (
	contractsStateBrowse contractsState = iota
	contractsStateCreate
	contractsStateUpload
)

type ContractsModel struct {
	CommonModel
	svc *contract.Service

	state     contractsState
	table     table.Model
	contracts []*contract.Contract
	visible   []*contract.Contract
	filter    contract.Filter
	loadGen   int64

	form   ContractFormModel
	upload UploadModel

	loading bool
	err     string
	status  string
}

func NewContractsModel(svc *contract.Service, extractor Extractor) ContractsModel {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Property", Width: 36},
		{Title: "Owner", Width: 18},
		{Title: "Tenant", Width: 18},
		{Title: "Ends", Width: 11},
		{Title: "Days", Width: 8},
		{Title: "Status", Width: 9},
		{Title: "Rent", Width: 16},
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

	return ContractsModel{
		svc:     svc,
		table:   t,
		filter:  contract.FilterAll,
		loadGen: nextGeneration(),
		upload:  NewUploadModel(extractor, svc),
		loading: true,
	}
}

func (m ContractsModel) Title() string { return "Contracts" }

func (m ContractsModel) ShortHelp() string {
	switch m.state {
	case contractsStateCreate:
		return "Enter: next | Esc: cancel"
	case contractsStateUpload:
		return m.upload.ShortHelp()
	}

	return "f: filter | r: refresh | n: new contract | u: upload document"
}

func (m ContractsModel) Capturing() bool { return m.state != contractsStateBrowse }

func (m ContractsModel) Init() tea.Cmd {
	return loadContractsCmd(m.svc, m.loadGen)
}

// reload starts a fresh load. Answers to earlier loads are dropped.
func (m ContractsModel) reload() (ContractsModel, tea.Cmd) {
	m.loadGen = nextGeneration()
	m.loading = true

	return m, loadContractsCmd(m.svc, m.loadGen)
}

func (m ContractsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.table.SetHeight(max(msg.Height-12, 5))

		return m, nil

	case contractsLoadedMsg:
		if msg.gen != m.loadGen {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.contracts = nil
			m.err = api.Message(msg.err, "Could not load contracts.")
		} else {
			m.contracts = msg.contracts
			m.err = ""
		}

		m.refreshTable()
		m.table.SetCursor(0)

		return m, nil

	case contractCreatedMsg:
		m.state = contractsStateBrowse
		m.upload = m.upload.Close()
		m.form = ContractFormModel{}
		m.table.Focus()
		m.status = fmt.Sprintf("Contract %s created.", msg.id)

		return m.reload()
	}

	switch m.state {
	case contractsStateCreate:
		return m.updateCreate(msg)
	case contractsStateUpload:
		return m.updateUpload(msg)
	}

	return m.updateBrowse(msg)
}

func (m ContractsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "f":
			m.filter = m.filter.Next()
			m.refreshTable()
			m.table.SetCursor(0)

			return m, nil
		case "r":
			m.status = ""

			return m.reload()
		case "n":
			m.form = NewContractFormModel(m.svc, contract.CreateParams{Currency: contract.CurrencyARS}, contractCreated)
			m.state = contractsStateCreate
			m.status = ""
			m.table.Blur()

			return m, m.form.Init()
		case "u":
			var cmd tea.Cmd
			m.upload, cmd = m.upload.Open()
			m.state = contractsStateUpload
			m.status = ""
			m.table.Blur()

			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ContractsModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = contractsStateBrowse
		m.form = ContractFormModel{}
		m.table.Focus()

		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	return m, cmd
}

func (m ContractsModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)

	if !m.upload.IsOpen() {
		m.state = contractsStateBrowse
		m.table.Focus()
	}

	return m, cmd
}

// refreshTable re-applies the filter to the loaded contracts at the current
// time. It never refetches.
func (m *ContractsModel) refreshTable() {
	now := m.svc.Now()
	m.visible = m.filter.Apply(m.contracts, now)

	rows := make([]table.Row, 0, len(m.visible))
	for _, c := range m.visible {
		rows = append(rows, table.Row{
			c.ID,
			c.PropertyLabel,
			c.OwnerName,
			c.TenantName,
			contract.FormatDate(c.EndDate),
			FormatDaysLeft(c.DaysLeft(now)),
			StatusLabel(c.Status(now)),
			contract.FormatMoney(c.Amount, c.Currency),
		})
	}

	m.table.SetRows(rows)
}

func (m ContractsModel) View() string {
	m.refreshTable()

	labels := make([]string, 0, len(contract.Filters))
	for _, f := range contract.Filters {
		if f == m.filter {
			labels = append(labels, activeStyle(f.String()))
		} else {
			labels = append(labels, f.String())
		}
	}

	sum := contract.Summarize(m.contracts, m.svc.Now())
	header := fmt.Sprintf("Filter: [f] %s | showing %d of %d | %s %d · %s %d · %s %d",
		strings.Join(labels, " · "), len(m.visible), sum.Total,
		statusStyle(contract.StatusActive).Render("active"), sum.Active,
		statusStyle(contract.StatusExpiring).Render("expiring"), sum.Expiring,
		statusStyle(contract.StatusExpired).Render("expired"), sum.Expired,
	)

	var body string
	if m.loading {
		body = "Loading contracts..."
	} else {
		body = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
	)

	switch m.state {
	case contractsStateCreate:
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(titleStyle.Render("New contract") + "\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	case contractsStateUpload:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.upload.View())
	}

	if m.err != "" {
		content = errorStyle.Render(m.err) + "\n" + content
	}

	if m.status != "" {
		content = successStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
