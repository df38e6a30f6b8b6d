package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is the interface that all routed TUI screens implement.
type Screen interface {
	tea.Model
	Title() string
	ShortHelp() string
	// Capturing reports whether the screen is reading text input, in which
	// case global navigation keys are left to it.
	Capturing() bool
}
