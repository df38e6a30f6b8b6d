// Package notify e-mails the list of contracts that end a fixed number of
// days from today.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// Sender delivers a composed message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Options struct {
	DaysBefore int
	From       string
	To         string
}

type Notifier struct {
	contracts *contract.Service
	sender    Sender
	opts      Options
}

func New(contracts *contract.Service, sender Sender, opts Options) (*Notifier, error) {
	if opts.From == "" || opts.To == "" {
		return nil, errors.New("notifier needs both a sender and a recipient address")
	}

	return &Notifier{contracts: contracts, sender: sender, opts: opts}, nil
}

const mailTemplate = `<div style="font-family: Arial, sans-serif">
  <h2>Contratos por vencer</h2>
  <p>Estos contratos vencen el <b>{{.Target}}</b> (en {{.Days}} días).</p>
  <table style="border-collapse:collapse;width:100%;max-width:900px">
    <thead>
      <tr>
        <th align="left" style="padding:8px;border-bottom:2px solid #ddd">ID</th>
        <th align="left" style="padding:8px;border-bottom:2px solid #ddd">Propiedad</th>
        <th align="left" style="padding:8px;border-bottom:2px solid #ddd">Propietario</th>
        <th align="left" style="padding:8px;border-bottom:2px solid #ddd">Inquilino</th>
        <th align="left" style="padding:8px;border-bottom:2px solid #ddd">Vence</th>
      </tr>
    </thead>
    <tbody>
{{- range .Contracts}}
      <tr>
        <td style="padding:8px;border-bottom:1px solid #eee">{{.ID}}</td>
        <td style="padding:8px;border-bottom:1px solid #eee">{{.PropertyLabel}}</td>
        <td style="padding:8px;border-bottom:1px solid #eee">{{.OwnerName}}</td>
        <td style="padding:8px;border-bottom:1px solid #eee">{{.TenantName}}</td>
        <td style="padding:8px;border-bottom:1px solid #eee">{{date .EndDate}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
</div>
`

var tmpl = template.Must(template.New("expiring").Funcs(template.FuncMap{
	"date": contract.FormatDate,
}).Parse(mailTemplate))

// Subject names the target date of a notification.
func Subject(days int, target time.Time) string {
	return fmt.Sprintf("[LeaseDesk] Vencimientos en %d días (%s)", days, contract.FormatDate(target))
}

// Render builds the HTML body listing contracts. Field values are escaped.
func Render(contracts []*contract.Contract, days int, target time.Time) (string, error) {
	var buf bytes.Buffer

	err := tmpl.Execute(&buf, struct {
		Target    string
		Days      int
		Contracts []*contract.Contract
	}{
		Target:    contract.FormatDate(target),
		Days:      days,
		Contracts: contracts,
	})
	if err != nil {
		return "", fmt.Errorf("rendering notification: %w", err)
	}

	return buf.String(), nil
}

// Check sends one e-mail listing the contracts that end exactly DaysBefore
// days from now. It returns how many contracts were listed; nothing is sent
// when there are none.
func (n *Notifier) Check(ctx context.Context) (int, error) {
	matches, err := n.contracts.EndingIn(ctx, n.opts.DaysBefore)
	if err != nil {
		return 0, fmt.Errorf("fetching contracts: %w", err)
	}

	now := n.contracts.Now()
	target := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, n.opts.DaysBefore)

	if len(matches) == 0 {
		slog.Info("no expirations", "target", contract.FormatDate(target))
		return 0, nil
	}

	body, err := Render(matches, n.opts.DaysBefore, target)
	if err != nil {
		return 0, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.opts.From)
	m.SetHeader("To", n.opts.To)
	m.SetHeader("Subject", Subject(n.opts.DaysBefore, target))
	m.SetBody("text/html", body)

	if err := n.sender.DialAndSend(m); err != nil {
		return 0, fmt.Errorf("sending notification: %w", err)
	}

	slog.Info("sent expiration email", "contracts", len(matches), "target", contract.FormatDate(target))

	return len(matches), nil
}
