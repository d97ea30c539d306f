package cmd

import (
	"os"
	"strings"

	"github.com/nerdlist/nerdlist/color"
	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/constant"
	"github.com/nerdlist/nerdlist/style"
	"github.com/nerdlist/nerdlist/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables",
	Long:  `List the supported environment variables and their current values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := slices.Clone(config.EnvExposed)
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)
		for _, env := range envs {
			if env != where.EnvConfigPath {
				env = strings.ToUpper(constant.Nerdlist + "_" + config.EnvKeyReplacer.Replace(env))
			}
			value := os.Getenv(env)
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
