package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

const minPasswordLength = 8

type registerValues struct {
	firstName string
	lastName  string
	email     string
	password  string
}

type RegisterModel struct {
	CommonModel
	client  AuthClient
	session *session.Store

	values     *registerValues
	form       *huh.Form
	submitting bool
	err        string
}

func NewRegisterModel(client AuthClient, store *session.Store) RegisterModel {
	m := RegisterModel{
		client:  client,
		session: store,
		values:  &registerValues{},
	}
	m.form = m.buildForm()

	return m
}

func (m RegisterModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("firstName").Title("First name").Value(&m.values.firstName).Validate(required("first name")),
			huh.NewInput().Key("lastName").Title("Last name").Value(&m.values.lastName).Validate(required("last name")),
			huh.NewInput().Key("email").Title("Email").Value(&m.values.email).Validate(required("email")),
			huh.NewInput().
				Key("password").
				Title("Password").
				Description(fmt.Sprintf("At least %d characters", minPasswordLength)).
				EchoMode(huh.EchoModePassword).
				Value(&m.values.password).
				Validate(func(s string) error {
					if len(s) < minPasswordLength {
						return fmt.Errorf("password must have at least %d characters", minPasswordLength)
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m RegisterModel) Title() string     { return "Create account" }
func (m RegisterModel) ShortHelp() string { return "Enter: next | Esc: back to sign in | ctrl+c: quit" }
func (m RegisterModel) Capturing() bool   { return true }

func (m RegisterModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = api.Message(msg.err, "Registration failed. Try again.")
			m.values.password = ""
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, startSession(m.session, msg.result)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			return m, Navigate(RouteLogin.Path())
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

	return m, m.registerCmd()
}

func (m RegisterModel) View() string {
	body := m.form.View()
	if m.submitting {
		body = faintStyle.Render("Creating account...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("LeaseDesk · Create account"),
		body,
	)

	if m.err != "" {
		content += "\n\n" + errorStyle.Render(m.err)
	}

	content += "\n\n" + faintStyle.Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type registerResultMsg struct {
	result *api.AuthResult
	err    error
}

func (m RegisterModel) registerCmd() tea.Cmd {
	req := api.RegisterRequest{
		FirstName: strings.TrimSpace(m.values.firstName),
		LastName:  strings.TrimSpace(m.values.lastName),
		Email:     strings.TrimSpace(m.values.email),
		Password:  m.values.password,
	}

	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		res, err := m.client.Register(ctx, req)
		return registerResultMsg{result: res, err: err}
	}
}
