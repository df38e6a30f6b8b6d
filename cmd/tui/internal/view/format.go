package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).PaddingBottom(1)
)

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func statusStyle(s contract.Status) lipgloss.Style {
	switch s {
	case contract.StatusExpired:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case contract.StatusExpiring:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
}

// StatusLabel is the on-screen name of a derived status.
func StatusLabel(s contract.Status) string {
	switch s {
	case contract.StatusExpired:
		return "Expired"
	case contract.StatusExpiring:
		return "Expiring"
	}

	return "Active"
}

// FormatDaysLeft renders a day count relative to today.
func FormatDaysLeft(d int) string {
	switch {
	case d == 0:
		return "today"
	case d < 0:
		return fmt.Sprintf("%d ago", -d)
	}

	return fmt.Sprintf("%d", d)
}

// ParseAmount reads an amount typed by hand. Both "550.000,50" and
// "550000.50" are accepted: a comma always marks the decimals, and a single
// dot followed by exactly three digits is read as a thousands separator.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.TrimPrefix(s, "$")

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".") == 4:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return d.InexactFloat64(), nil
}

// requestCtx returns the context for backend calls. The API client carries
// the configured timeout, so requests here are not bounded again.
func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}
