package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

var generations atomic.Int64

// nextGeneration tags an async request so that results arriving after the
// dialog that asked for them was closed or reopened can be told apart.
func nextGeneration() int64 {
	return generations.Add(1)
}

type contractFormValues struct {
	property string
	owner    string
	tenant   string
	start    string
	end      string
	amount   string
	currency contract.Currency
}

func newContractFormValues(p contract.CreateParams) *contractFormValues {
	v := &contractFormValues{
		property: p.PropertyLabel,
		owner:    p.OwnerName,
		tenant:   p.TenantName,
		start:    contract.FormatDate(p.StartDate),
		end:      contract.FormatDate(p.EndDate),
		currency: p.Currency,
	}

	if p.Amount > 0 {
		v.amount = strconv.FormatFloat(p.Amount, 'f', -1, 64)
	}

	if v.currency == "" {
		v.currency = contract.CurrencyARS
	}

	return v
}

// params converts the typed values. Empty fields stay empty so that
// Validate reports them together.
func (v *contractFormValues) params() (contract.CreateParams, error) {
	p := contract.CreateParams{
		PropertyLabel: strings.TrimSpace(v.property),
		OwnerName:     strings.TrimSpace(v.owner),
		TenantName:    strings.TrimSpace(v.tenant),
		Currency:      v.currency,
	}

	var err error

	if s := strings.TrimSpace(v.start); s != "" {
		if p.StartDate, err = contract.ParseDate(s); err != nil {
			return p, errors.New("start date must be YYYY-MM-DD")
		}
	}

	if s := strings.TrimSpace(v.end); s != "" {
		if p.EndDate, err = contract.ParseDate(s); err != nil {
			return p, errors.New("end date must be YYYY-MM-DD")
		}
	}

	if s := strings.TrimSpace(v.amount); s != "" {
		if p.Amount, err = ParseAmount(s); err != nil {
			return p, errors.New("amount must be a number, e.g. 550.000,50")
		}
	}

	return p, p.Validate()
}

func optionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	if _, err := contract.ParseDate(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}

	return nil
}

// ContractFormModel edits and submits one new contract. The owner decides
// what happens after a successful create through onCreated.
type ContractFormModel struct {
	svc       *contract.Service
	gen       int64
	onCreated func(id string) tea.Msg

	values     *contractFormValues
	form       *huh.Form
	submitting bool
	err        string
}

func NewContractFormModel(svc *contract.Service, initial contract.CreateParams, onCreated func(id string) tea.Msg) ContractFormModel {
	m := ContractFormModel{
		svc:       svc,
		gen:       nextGeneration(),
		onCreated: onCreated,
		values:    newContractFormValues(initial),
	}
	m.form = m.buildForm()

	return m
}

func (m ContractFormModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("property").Title("Property").Value(&m.values.property),
			huh.NewInput().Key("owner").Title("Owner").Value(&m.values.owner),
			huh.NewInput().Key("tenant").Title("Tenant").Value(&m.values.tenant),
			huh.NewInput().Key("start").Title("Start date").Placeholder("YYYY-MM-DD").Value(&m.values.start).Validate(optionalDate),
			huh.NewInput().Key("end").Title("End date").Placeholder("YYYY-MM-DD").Value(&m.values.end).Validate(optionalDate),
			huh.NewInput().Key("amount").Title("Amount").Placeholder("550.000,50").Value(&m.values.amount),
			huh.NewSelect[contract.Currency]().
				Key("currency").
				Title("Currency").
				Options(
					huh.NewOption("ARS", contract.CurrencyARS),
					huh.NewOption("USD", contract.CurrencyUSD),
				).
				Value(&m.values.currency),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ContractFormModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ContractFormModel) Submitting() bool { return m.submitting }

func (m ContractFormModel) Update(msg tea.Msg) (ContractFormModel, tea.Cmd) {
	if msg, ok := msg.(contractSavedMsg); ok {
		if msg.gen != m.gen {
			return m, nil
		}

		m.submitting = false
		if msg.err != nil {
			m.err = api.Message(msg.err, fmt.Sprintf("Could not create the contract: %v", msg.err))
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		id := msg.id
		onCreated := m.onCreated

		return m, func() tea.Msg { return onCreated(id) }
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

	params, err := m.values.params()
	if err != nil {
		m.err = err.Error()
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	m.submitting = true
	m.err = ""

	return m, m.saveCmd(params)
}

func (m ContractFormModel) View() string {
	body := m.form.View()
	if m.submitting {
		body = faintStyle.Render("Saving contract...")
	}

	if m.err != "" {
		body = errorStyle.Render(m.err) + "\n\n" + body
	}

	return lipgloss.NewStyle().Width(54).Render(body)
}

type contractSavedMsg struct {
	gen int64
	id  string
	err error
}

func (m ContractFormModel) saveCmd(params contract.CreateParams) tea.Cmd {
	gen := m.gen

	return func() tea.Msg {
		ctx, cancel := requestCtx()
		defer cancel()

		id, err := m.svc.Create(ctx, params)
		return contractSavedMsg{gen: gen, id: id, err: err}
	}
}
