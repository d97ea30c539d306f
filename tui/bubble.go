package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/key"
	"github.com/nerdlist/nerdlist/script"
	"github.com/nerdlist/nerdlist/session"
	"github.com/nerdlist/nerdlist/style"
	"github.com/nerdlist/nerdlist/util"
	"github.com/spf13/viper"
)

const journalSize = 8

// snapshot is the state an undo returns to.
type snapshot struct {
	values []string
	lines  int
}

// entry is one submitted input line and what it did.
type entry struct {
	input string
	steps []script.Step
	err   error
}

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	inputC    textinput.Model
	progressC progress.Model
	helpC     help.Model
	notifier  notifier

	session   session.Session
	undoStack util.Stack[snapshot]
	journal   []entry
	lines     []string
	failures  int
	showSlots bool

	lastError     error
	width, height int

	options *Options
}

func newBubble(options *Options) (*statefulBubble, error) {
	s, err := session.New(options.Kind, options.Capacity, config.ListOptions()...)
	if err != nil {
		return nil, err
	}

	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
		state:     playState,
		keymap:    keymap,
		session:   s,
		showSlots: viper.GetBool(key.TUIShowSlots),
		options:   options,
	}

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "insert 1 2 3"
	bubble.inputC.Prompt = style.Fg(style.AccentColor)("> ")
	bubble.inputC.CharLimit = 256
	bubble.inputC.Focus()

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bubble.helpC = help.New()

	return bubble, nil
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.helpC.Width = width
	b.inputC.Width = util.Max(width-8, 10)
	b.progressC.Width = util.Min(util.Max(width-8, 10), 60)
}

func (b *statefulBubble) remember(e entry) {
	b.journal = append(b.journal, e)
	if len(b.journal) > journalSize {
		b.journal = b.journal[len(b.journal)-journalSize:]
	}
}

// submit parses and executes one input line against the session.
func (b *statefulBubble) submit(input string) (grew bool) {
	number := len(b.lines) + 1
	cmd, ok, err := script.ParseLine(number, input)
	if err != nil {
		b.failures++
		b.remember(entry{input: input, err: err})
		return false
	}
	if !ok {
		return false
	}

	if cmd.Op.Mutates() {
		b.checkpoint()
	}

	steps := script.Apply(b.session, cmd)
	for _, step := range steps {
		if !step.OK {
			b.failures++
		}
		grew = grew || step.Grew
	}

	b.lines = append(b.lines, cmd.String())
	b.remember(entry{input: input, steps: steps})
	return grew
}

// checkpoint records the current elements and script length for undo.
func (b *statefulBubble) checkpoint() {
	b.undoStack.Push(snapshot{values: b.session.Values(), lines: len(b.lines)})
}

// reset empties the list and records it as a script line.
func (b *statefulBubble) reset() error {
	b.checkpoint()
	b.lines = append(b.lines, string(script.OpReset))
	return b.session.Reset()
}

// undo restores the elements held before the last mutating command and drops
// the script lines entered since, so the remembered script replays to the same list.
func (b *statefulBubble) undo() error {
	if b.undoStack.Len() == 0 {
		return nil
	}

	last := b.undoStack.Pop()
	b.lines = b.lines[:last.lines]
	if err := b.session.Reset(); err != nil {
		return err
	}
	for _, v := range last.values {
		if err := b.session.Insert(v); err != nil {
			return fmt.Errorf("undo: %w", err)
		}
	}
	return nil
}
