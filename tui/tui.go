// Package tui provides the interactive list playground.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nerdlist/nerdlist/element"
	"github.com/nerdlist/nerdlist/history"
	"github.com/nerdlist/nerdlist/log"
)

// Options configures the playground session.
type Options struct {
	Kind     element.Kind
	Capacity int
}

// Run starts the playground and blocks until the user quits.
// The lines entered during the session are remembered in the history.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}
	defer bubble.session.Destroy()

	if _, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	if len(bubble.lines) == 0 {
		return nil
	}

	err = history.Remember(history.Record{
		Kind:     string(options.Kind),
		Capacity: options.Capacity,
		Lines:    bubble.lines,
		Failures: bubble.failures,
		At:       time.Now(),
	})
	if err != nil {
		log.Warnf("could not save playground history: %s", err)
	}
	return nil
}
