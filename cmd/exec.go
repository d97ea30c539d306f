package cmd

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/element"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/history"
	"github.com/nerdlist/nerdlist/key"
	"github.com/nerdlist/nerdlist/log"
	"github.com/nerdlist/nerdlist/render"
	"github.com/nerdlist/nerdlist/script"
	"github.com/nerdlist/nerdlist/session"
	"github.com/nerdlist/nerdlist/util"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringP("file", "f", "", "Read operations from a script file")
	execCmd.Flags().BoolP("last", "l", false, "Replay the most recently executed script")
	execCmd.MarkFlagsMutuallyExclusive("file", "last")

	execCmd.Flags().StringP("format", "F", "", "Output format ("+strings.Join(render.Formats(), ", ")+")")
	lo.Must0(execCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.Formats(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ExecFormat, execCmd.Flags().Lookup("format")))

	execCmd.Flags().BoolP("stop-on-error", "e", false, "Stop at the first failed operation")
	lo.Must0(viper.BindPFlag(key.ExecStopOnError, execCmd.Flags().Lookup("stop-on-error")))

	execCmd.SetOut(os.Stdout)
}

var execCmd = &cobra.Command{
	Use:   "exec [operations...]",
	Short: "Run list operations and report every step",
	Long: `Run a script of list operations against a fresh list and report the outcome of every step.
Each argument is one line. Without arguments the script is read from --file or standard input.

Operations: ` + strings.Join(script.Ops(), ", "),
	Example: `  nerdlist exec "insert 1 2 3" "get 2" "delete 0" dump
  nerdlist exec -C 1 -t string -F tree "insert a b c" cap
  nerdlist exec -f fill.txt -F json
  nerdlist exec --last`,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := render.ParseFormat(viper.GetString(key.ExecFormat))
		handleErr(err)

		kind, err := configuredKind()
		handleErr(err)
		capacity := config.InitialCapacity()

		var commands []script.Command
		switch {
		case lo.Must(cmd.Flags().GetBool("last")):
			var record history.Record
			record, err = lastRecord()
			handleErr(err)

			kind, err = element.ParseKind(record.Kind)
			handleErr(err)
			capacity = record.Capacity
			commands, err = script.ParseArgs(record.Lines)
		case len(args) > 0:
			commands, err = script.ParseArgs(args)
		default:
			var text string
			text, err = readScript(cmd)
			handleErr(err)
			commands, err = script.Parse(text)
		}
		handleErr(err)

		s, err := session.New(kind, capacity, config.ListOptions()...)
		handleErr(err)
		defer s.Destroy()

		log.Infof("executing %s against a %s list of capacity %d", util.Quantify(len(commands), "command", "commands"), kind, capacity)
		report, execErr := script.Execute(s, commands, script.Options{
			StopOnError: viper.GetBool(key.ExecStopOnError),
		})

		handleErr(render.Report(cmd.OutOrStdout(), report, format))

		if !lo.Must(cmd.Flags().GetBool("last")) {
			err = history.Remember(history.Record{
				Kind:     string(kind),
				Capacity: capacity,
				Lines:    lo.Map(commands, func(c script.Command, _ int) string { return c.String() }),
				Failures: report.Failures,
				At:       time.Now(),
			})
			if err != nil {
				log.Warnf("could not save history: %s", err)
			}
		}

		handleErr(execErr)
	},
}

func lastRecord() (history.Record, error) {
	last, err := history.Last()
	if err != nil {
		return history.Record{}, err
	}

	record, ok := last.Get()
	if !ok {
		return history.Record{}, errors.New("no script has been executed yet")
	}
	return record, nil
}

func readScript(cmd *cobra.Command) (string, error) {
	if path := lo.Must(cmd.Flags().GetString("file")); path != "" {
		contents, err := afero.ReadFile(filesystem.API(), path)
		if err != nil {
			return "", err
		}
		return string(contents), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no operations given: pass them as arguments, with --file or on standard input")
	}

	contents, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

func init() {
	execCmd.AddCommand(execSchemaCmd)
	execSchemaCmd.SetOut(os.Stdout)
}

var execSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the json report format",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(render.WriteSchema(cmd.OutOrStdout()))
	},
}
