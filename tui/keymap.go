package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/nerdlist/nerdlist/color"
	"github.com/nerdlist/nerdlist/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	undo,
	reset,
	toggleSlots,
	back,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Purple)("enter"), style.Fg(color.Purple)("run")),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+z", "ctrl+u"),
			key.WithHelp("ctrl+z", "undo"),
		),
		reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		toggleSlots: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "toggle slots"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "back"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case errorState:
		return h(k.back, k.forceQuit), h(k.back, k.forceQuit)
	default:
		return h(k.confirm, k.undo, k.showHelp), h(k.confirm, k.undo, k.reset, k.toggleSlots, k.quit, k.forceQuit)
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
