package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/leasedesk/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/config"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract/fixture"
	"github.com/MrJamesThe3rd/leasedesk/internal/logger"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

type model struct {
	appName   string
	session   *session.Store
	auth      view.AuthClient
	contracts *contract.Service
	extractor view.Extractor

	route  view.Route
	screen view.Screen
	width  int
	height int
}

var navItems = []struct {
	key   string
	route view.Route
	label string
}{
	{key: "1", route: view.RouteDashboard, label: "Dashboard"},
	{key: "2", route: view.RouteContracts, label: "Contracts"},
	{key: "3", route: view.RouteProperties, label: "Properties"},
}

func newModel(appName string, store *session.Store, auth view.AuthClient, contracts *contract.Service, extractor view.Extractor, startPath string) model {
	m := model{
		appName:   appName,
		session:   store,
		auth:      auth,
		contracts: contracts,
		extractor: extractor,
	}
	m, _ = m.open(startPath)

	return m
}

// open resolves path through the route guard and builds a fresh screen.
func (m model) open(path string) (model, tea.Cmd) {
	authenticated := m.session.Authenticated()
	m.route = view.Resolve(path, authenticated)

	switch m.route {
	case view.RouteLogin:
		m.screen = view.NewLoginModel(m.auth, m.session)
	case view.RouteRegister:
		m.screen = view.NewRegisterModel(m.auth, m.session)
	case view.RouteDashboard:
		m.screen = view.NewDashboardModel(m.contracts, m.session.User())
	case view.RouteContracts:
		m.screen = view.NewContractsModel(m.contracts, m.extractor)
	case view.RouteProperties:
		m.screen = view.NewPropertiesModel()
	default:
		m.screen = view.NewNotFoundModel(path, authenticated)
	}

	slog.Debug("navigated", "path", path, "route", m.route.Path())

	cmds := []tea.Cmd{m.screen.Init()}

	if m.width > 0 {
		var cmd tea.Cmd
		m, cmd = m.updateScreen(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) Init() tea.Cmd {
	return m.screen.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.screen.Capturing() {
			if cmd, ok := m.globalKey(msg.String()); ok {
				return m, cmd
			}
		}

	case view.NavigateMsg:
		return m.open(msg.Path)

	case view.LogoutMsg:
		if err := m.session.Clear(); err != nil {
			slog.Error("failed to clear session", "error", err)
		}

		return m.open(view.RouteLogin.Path())
	}

	return m.updateScreen(msg)
}

func (m model) globalKey(key string) (tea.Cmd, bool) {
	if key == "q" {
		return tea.Quit, true
	}

	if !m.route.Protected() {
		return nil, false
	}

	if key == "o" {
		return view.Logout, true
	}

	for _, item := range navItems {
		if item.key == key {
			return view.Navigate(item.route.Path()), true
		}
	}

	return nil, false
}

func (m model) updateScreen(msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.screen.Update(msg)
	if s, ok := next.(view.Screen); ok {
		m.screen = s
	}

	return m, cmd
}

func (m model) View() string {
	if !m.route.Protected() {
		return m.screen.View()
	}

	tabs := make([]string, 0, len(navItems))
	for _, item := range navItems {
		label := fmt.Sprintf("%s %s", item.key, item.label)
		if item.route == m.route {
			label = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render(label)
		}

		tabs = append(tabs, label)
	}

	user := ""
	if u := m.session.User(); u != nil {
		user = u.DisplayName() + " · "
	}

	nav := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Render(m.appName + "   " + strings.Join(tabs, "  ") + "   " + user + "o Logout · q Quit")

	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(m.screen.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, nav, m.screen.View(), help)
}

func contractRepository(cfg *config.Config, client *api.Client) contract.Repository {
	switch cfg.Contracts.Source {
	case config.SourceFixture:
		return fixture.New(time.Now())
	case config.SourceFallback:
		return &contract.FallbackRepository{
			Primary:  api.NewContractRepository(client),
			Fallback: fixture.New(time.Now()),
		}
	}

	return api.NewContractRepository(client)
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(xdg.StateHome, "leasedesk", "tui.log")
	}

	closeLog, err := logger.InitFile(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	sessionPath := cfg.Session.Path
	if sessionPath == "" {
		if sessionPath, err = session.DefaultPath(); err != nil {
			return err
		}
	}

	store := session.New(sessionPath)
	if err := store.Load(); err != nil {
		slog.Warn("ignoring unreadable session", "error", err)
	}

	client := api.New(cfg.API.BaseURL, store, cfg.API.Timeout)
	contracts := contract.NewService(contractRepository(cfg, client))

	m := newModel(cfg.App.Name, store, client, contracts, client.Extractor(), cfg.App.StartPath)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("leasedesk failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
