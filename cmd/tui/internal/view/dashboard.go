package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

const upcomingLimit = 5

type DashboardModel struct {
	CommonModel
	svc  *contract.Service
	user *session.User

	contracts []*contract.Contract
	loadGen   int64
	loading   bool
	err       string
}

// NewDashboardModel builds the landing screen. user may be nil when the
// backend did not return a profile.
func NewDashboardModel(svc *contract.Service, user *session.User) DashboardModel {
	return DashboardModel{
		svc:     svc,
		user:    user,
		loadGen: nextGeneration(),
		loading: true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "r: refresh" }
func (m DashboardModel) Capturing() bool   { return false }

func (m DashboardModel) Init() tea.Cmd {
	return loadContractsCmd(m.svc, m.loadGen)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case contractsLoadedMsg:
		if msg.gen != m.loadGen {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.contracts = nil
			m.err = api.Message(msg.err, "Could not load contracts.")
			return m, nil
		}

		m.err = ""
		m.contracts = msg.contracts

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			m.loadGen = nextGeneration()

			return m, loadContractsCmd(m.svc, m.loadGen)
		}
	}

	return m, nil
}

// upcoming returns the contracts expiring at now, soonest first.
func (m DashboardModel) upcoming(now time.Time) []*contract.Contract {
	out := contract.FilterExpiring.Apply(m.contracts, now)
	slices.SortStableFunc(out, func(a, b *contract.Contract) int {
		return a.EndDate.Compare(b.EndDate)
	})

	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}

	return out
}

func (m DashboardModel) View() string {
	greeting := "Welcome"
	if m.user != nil && m.user.DisplayName() != "" {
		greeting = "Welcome, " + m.user.DisplayName()
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(1).Render(titleStyle.Render(greeting) + "\n" + "Loading contracts...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(greeting))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	now := m.svc.Now()
	s := contract.Summarize(m.contracts, now)

	card := lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(fmt.Sprintf("Total\n%d", s.Total)),
		card.Render(statusStyle(contract.StatusActive).Render(fmt.Sprintf("Active\n%d", s.Active))),
		card.Render(statusStyle(contract.StatusExpiring).Render(fmt.Sprintf("Expiring\n%d", s.Expiring))),
		card.Render(statusStyle(contract.StatusExpired).Render(fmt.Sprintf("Expired\n%d", s.Expired))),
	))
	b.WriteString("\n\n")

	upcoming := m.upcoming(now)
	if len(upcoming) == 0 {
		b.WriteString(faintStyle.Render("No contracts expire in the next 60 days."))
	} else {
		b.WriteString("Next to expire\n")
		for _, c := range upcoming {
			fmt.Fprintf(&b, "  %s  %-40s  %s  (%s days)\n",
				c.ID, c.PropertyLabel, contract.FormatDate(c.EndDate), FormatDaysLeft(c.DaysLeft(now)))
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type contractsLoadedMsg struct {
	gen       int64
	contracts []*contract.Contract
	err       error
}

func loadContractsCmd(svc *contract.Service, gen int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		contracts, err := svc.List(ctx)
		return contractsLoadedMsg{gen: gen, contracts: contracts, err: err}
	}
}
