package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifierCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case errorState:
		cmd = b.updateError(msg)
	default:
		cmd = b.updatePlay(msg)
	}

	return b, tea.Batch(notifierCmd, cmd)
}

func (b *statefulBubble) updatePlay(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			input := b.inputC.Value()
			b.inputC.Reset()
			if b.submit(input) {
				return notify(fmt.Sprintf("buffer doubled to %d slots", b.session.Cap()))
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.undo):
			if b.undoStack.Len() == 0 {
				return notify("nothing to undo")
			}
			if err := b.undo(); err != nil {
				b.raiseError(err)
				return nil
			}
			return notify("undone")
		case bubblesKey.Matches(msg, b.keymap.reset):
			if err := b.reset(); err != nil {
				b.raiseError(err)
				return nil
			}
			return notify("list reset")
		case bubblesKey.Matches(msg, b.keymap.toggleSlots):
			b.showSlots = !b.showSlots
			return nil
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.back) {
		b.lastError = nil
		b.setState(playState)
	}
	return nil
}
