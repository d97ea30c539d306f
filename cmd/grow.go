package cmd

import (
	"fmt"
	"os"

	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/color"
	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/icon"
	"github.com/nerdlist/nerdlist/style"
	"github.com/nerdlist/nerdlist/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(growCmd)
	growCmd.Flags().IntP("count", "n", 100, "Number of elements to insert")
	growCmd.SetOut(os.Stdout)
}

// growth is one doubling observed while filling a list.
type growth struct {
	insert   int
	from, to int
}

// traceGrowth inserts count elements into a list of the given capacity and records every doubling.
func traceGrowth(capacity, count int, opts ...arraylist.Option) ([]growth, *arraylist.List[int], error) {
	l, err := arraylist.New[int](capacity, opts...)
	if err != nil {
		return nil, nil, err
	}

	var trace []growth
	for i := 0; i < count; i++ {
		before := l.Cap()
		if err := l.Insert(i); err != nil {
			return trace, l, fmt.Errorf("insert #%d: %w", i+1, err)
		}
		if l.Cap() != before {
			trace = append(trace, growth{insert: i + 1, from: before, to: l.Cap()})
		}
	}
	return trace, l, nil
}

var growCmd = &cobra.Command{
	Use:   "grow",
	Short: "Show how the capacity doubles while a list fills up",
	Example: `  nerdlist grow -C 1 -n 1000
  nerdlist grow -C 3 -n 50`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		count := lo.Must(cmd.Flags().GetInt("count"))
		capacity := config.InitialCapacity()

		trace, l, err := traceGrowth(capacity, count, config.ListOptions()...)
		for _, g := range trace {
			cmd.Printf(
				"%s insert %s: %s %s %s\n",
				icon.Get(icon.Grow),
				style.Fg(color.Purple)(fmt.Sprintf("#%d", g.insert)),
				style.Faint(fmt.Sprint(g.from)),
				style.Faint("->"),
				style.Fg(color.Cyan)(fmt.Sprint(g.to)),
			)
		}

		if l != nil {
			defer l.Destroy()
			cmd.Printf(
				"%s %s in %s after %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				util.Quantify(l.Len(), "element", "elements"),
				util.Quantify(l.Cap(), "slot", "slots"),
				util.Quantify(len(trace), "doubling", "doublings"),
			)
		}
		handleErr(err)
	},
}
