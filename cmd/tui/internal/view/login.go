package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

// AuthClient is the part of the backend client the sign-in screens use.
type AuthClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResult, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error)
}

type loginValues struct {
	email    string
	password string
}

type LoginModel struct {
	CommonModel
	client  AuthClient
	session *session.Store

	values     *loginValues
	form       *huh.Form
	submitting bool
	err        string
}

func NewLoginModel(client AuthClient, store *session.Store) LoginModel {
	m := LoginModel{
		client:  client,
		session: store,
		values:  &loginValues{},
	}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.values.email).
				Validate(required("email")),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.values.password).
				Validate(required("password")),
		),
	).WithWidth(45).WithShowHelp(false)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}

		return nil
	}
}

func (m LoginModel) Title() string     { return "Sign in" }
func (m LoginModel) ShortHelp() string { return "Enter: next | ctrl+r: create account | ctrl+c: quit" }
func (m LoginModel) Capturing() bool   { return true }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = api.Message(msg.err, "Login failed. Check your credentials.")
			m.values.password = ""
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, startSession(m.session, msg.result)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		if msg.String() == "ctrl+r" {
			return m, Navigate(RouteRegister.Path())
		}
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.submitting = true
	m.err = ""

	return m, m.loginCmd()
}

func (m LoginModel) View() string {
	body := m.form.View()
	if m.submitting {
		body = faintStyle.Render("Signing in...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("LeaseDesk · Sign in"),
		body,
	)

	if m.err != "" {
		content += "\n\n" + errorStyle.Render(m.err)
	}

	content += "\n\n" + faintStyle.Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type loginResultMsg struct {
	result *api.AuthResult
	err    error
}

func (m LoginModel) loginCmd() tea.Cmd {
	req := api.LoginRequest{
		Email:    strings.TrimSpace(m.values.email),
		Password: m.values.password,
	}

	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		res, err := m.client.Login(ctx, req)
		return loginResultMsg{result: res, err: err}
	}
}

// startSession stores the token and opens the dashboard. A session that
// cannot be written to disk still holds for this run.
func startSession(store *session.Store, res *api.AuthResult) tea.Cmd {
	if err := store.Set(res.Token, res.User); err != nil {
		slog.Warn("failed to persist session", "error", err)
	}

	return Navigate(RouteDashboard.Path())
}
