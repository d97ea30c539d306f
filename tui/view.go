package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/nerdlist/nerdlist/color"
	"github.com/nerdlist/nerdlist/icon"
	"github.com/nerdlist/nerdlist/render"
	"github.com/nerdlist/nerdlist/style"
	"github.com/nerdlist/nerdlist/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	switch b.state {
	case errorState:
		return b.viewError()
	default:
		return b.viewPlay()
	}
}

func (b *statefulBubble) viewPlay() string {
	s := b.session
	lines := []string{
		style.Title(fmt.Sprintf("%s list", s.Kind())),
		"",
		fmt.Sprintf("%s  %s",
			b.progressC.ViewAs(float64(s.Len())/float64(util.Max(s.Cap(), 1))),
			style.Faint(fmt.Sprintf("len %d  cap %d", s.Len(), s.Cap())),
		),
		"",
	}

	if b.showSlots {
		lines = append(lines, render.SlotGrid(s.Values(), s.Cap(), b.width-4), "")
	}

	for _, e := range b.journal {
		lines = append(lines, b.viewEntry(e)...)
	}
	if len(b.journal) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, b.inputC.View(), b.notifier.View())
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewEntry(e entry) []string {
	fail := style.Fg(color.Red)(icon.Get(icon.Fail))
	if e.err != nil {
		return []string{fail + " " + style.Faint(e.input), b.wrapError(e.err.Error())}
	}

	var out []string
	for _, step := range e.steps {
		line := strings.TrimSpace(step.Op + " " + strings.Join(step.Args, " "))
		switch {
		case !step.OK:
			out = append(out, fail+" "+line, b.wrapError(step.Error))
		case step.Value != "":
			out = append(out, style.Fg(color.Green)(icon.Get(icon.Success))+" "+line+" "+style.Fg(color.Yellow)(step.Value))
		default:
			out = append(out, style.Fg(color.Green)(icon.Get(icon.Success))+" "+line)
		}
	}
	return out
}

func (b *statefulBubble) wrapError(text string) string {
	width := util.Max(b.width-8, 20)
	return style.Fg(color.Red)(wrap.String("  "+text, width))
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(color.Red)(b.lastError.Error()), util.Max(b.width-4, 20))
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l) + 3; b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += "\n" + b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
