package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nerdlist/nerdlist/style"
)

const notificationLifetime = 3 * time.Second

type notificationMsg string

type clearNotificationMsg struct{}

// notifier shows a short-lived line under the playground, e.g. when the buffer grows.
type notifier struct {
	notification string
}

func notify(message string) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(message)
	}
}

func clearNotification() tea.Cmd {
	return tea.Tick(notificationLifetime, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

func (n *notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notificationMsg:
		n.notification = string(msg)
		return clearNotification()
	case clearNotificationMsg:
		n.notification = ""
	}
	return nil
}

func (n *notifier) View() string {
	if n.notification == "" {
		return ""
	}
	return style.Faint(n.notification)
}
