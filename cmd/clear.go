package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/icon"
	"github.com/nerdlist/nerdlist/util"
	"github.com/nerdlist/nerdlist/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"history file", "history", mo.Some("s"), where.History},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
	{"temp directory", "temp", mo.None[string](), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear saved history, logs and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			names := lo.Map(selected, func(target clearTarget, _ int) string { return target.name })

			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", strings.Join(names, ", ")),
				Default: true,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := filesystem.API().RemoveAll(target.location())
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
