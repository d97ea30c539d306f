package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nerdlist/nerdlist/color"
	"github.com/nerdlist/nerdlist/icon"
	"github.com/nerdlist/nerdlist/script"
	"github.com/nerdlist/nerdlist/style"
	"github.com/nerdlist/nerdlist/util"
	"github.com/samber/lo"
)

func stepCommand(step script.Step) string {
	return strings.TrimSpace(step.Op + " " + strings.Join(step.Args, " "))
}

func writeText(w io.Writer, report *script.Report) error {
	var b strings.Builder

	for _, step := range report.Steps {
		status := style.Fg(color.Green)(icon.Get(icon.Success))
		if !step.OK {
			status = style.Fg(color.Red)(icon.Get(icon.Fail))
		}

		fmt.Fprintf(&b, "%s %s %s", status, style.Faint(fmt.Sprintf("%3d", step.Line)), style.Fg(color.Purple)(stepCommand(step)))

		switch {
		case !step.OK:
			fmt.Fprintf(&b, " %s", style.Fg(color.Red)(step.Error))
		case step.Value != "":
			fmt.Fprintf(&b, " %s %s", style.Faint("=>"), style.Fg(color.Yellow)(step.Value))
		}
		if step.Grew {
			fmt.Fprintf(&b, " %s %s", icon.Get(icon.Grow), style.Fg(color.Cyan)(fmt.Sprintf("cap %d", step.Cap)))
		}
		b.WriteByte('\n')
	}

	if len(report.Steps) > 0 {
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%s %s, %s, %s\n",
		style.Bold(report.Kind+" list"),
		util.Quantify(report.Len, "element", "elements"),
		util.Quantify(report.Cap, "slot", "slots"),
		util.Quantify(report.Failures, "failure", "failures"),
	)

	if report.Cap > 0 {
		b.WriteString(Slots(report.Final, report.Cap))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Slots draws the buffer as a row of cells: one per live element followed by the spare capacity.
func Slots(values []string, capacity int) string {
	cells := lo.Map(values, func(v string, _ int) string {
		return style.Slot(v, true)
	})
	for i := len(values); i < capacity; i++ {
		cells = append(cells, style.Slot(" ", false))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// SlotGrid is Slots wrapped into rows no wider than width cells.
func SlotGrid(values []string, capacity, width int) string {
	if capacity == 0 {
		return ""
	}

	cellWidth := lipgloss.Width(style.Slot(" ", false))
	for _, v := range values {
		cellWidth = util.Max(cellWidth, lipgloss.Width(style.Slot(v, true)))
	}
	perRow := util.Max(width/cellWidth, 1)

	rows := lo.Map(lo.Chunk(lo.Range(capacity), perRow), func(indices []int, _ int) string {
		first := indices[0]
		last := first + len(indices)
		live := values[util.Min(first, len(values)):util.Min(last, len(values))]
		return Slots(live, len(indices))
	})
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
