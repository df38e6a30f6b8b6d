package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PropertiesModel holds the place of the properties screen.
type PropertiesModel struct {
	CommonModel
}

func NewPropertiesModel() PropertiesModel { return PropertiesModel{} }

func (m PropertiesModel) Title() string     { return "Properties" }
func (m PropertiesModel) ShortHelp() string { return "" }
func (m PropertiesModel) Capturing() bool   { return false }
func (m PropertiesModel) Init() tea.Cmd     { return nil }

func (m PropertiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(msg)
	}

	return m, nil
}

func (m PropertiesModel) View() string {
	return lipgloss.NewStyle().Padding(1).Render(
		titleStyle.Render("Properties") + "\n" + faintStyle.Render("Coming soon."),
	)
}

// NotFoundModel is shown for unknown paths.
type NotFoundModel struct {
	CommonModel
	path          string
	authenticated bool
}

func NewNotFoundModel(path string, authenticated bool) NotFoundModel {
	return NotFoundModel{path: path, authenticated: authenticated}
}

func (m NotFoundModel) home() Route {
	if m.authenticated {
		return RouteDashboard
	}

	return RouteLogin
}

func (m NotFoundModel) Title() string     { return "Not found" }
func (m NotFoundModel) ShortHelp() string { return "Enter: go to " + m.home().Path() + " | q: quit" }
func (m NotFoundModel) Capturing() bool   { return false }
func (m NotFoundModel) Init() tea.Cmd     { return nil }

func (m NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return m, Navigate(m.home().Path())
		}
	}

	return m, nil
}

func (m NotFoundModel) View() string {
	return lipgloss.NewStyle().Padding(2).Render(
		titleStyle.Render("404") + "\n" +
			"Nothing lives at " + activeStyle(m.path) + ".\n\n" +
			faintStyle.Render(m.ShortHelp()),
	)
}
