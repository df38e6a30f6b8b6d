package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) resize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

// NavigateMsg asks the root model to open Path. The route guard decides what
// is actually shown.
type NavigateMsg struct {
	Path string
}

func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// LogoutMsg clears the session and returns to the login screen.
type LogoutMsg struct{}

func Logout() tea.Msg {
	return LogoutMsg{}
}
