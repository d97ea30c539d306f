// Package cmd implements the nerdlist command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nerdlist/nerdlist/color"
	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/constant"
	"github.com/nerdlist/nerdlist/element"
	"github.com/nerdlist/nerdlist/icon"
	"github.com/nerdlist/nerdlist/key"
	"github.com/nerdlist/nerdlist/log"
	"github.com/nerdlist/nerdlist/style"
	"github.com/nerdlist/nerdlist/tui"
	"github.com/nerdlist/nerdlist/util"
	"github.com/nerdlist/nerdlist/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g. nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("type", "t", "", "Element type of the list ("+strings.Join(element.Names(), ", ")+")")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return element.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ListElementType, rootCmd.PersistentFlags().Lookup("type")))

	rootCmd.PersistentFlags().IntP("capacity", "C", 0, "Initial capacity of the list")
	lo.Must0(viper.BindPFlag(key.ListInitialCapacity, rootCmd.PersistentFlags().Lookup("capacity")))

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Nerdlist,
	Short: "A playground for growable array lists",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - A playground for growable array lists"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		kind, err := configuredKind()
		handleErr(err)

		options := tui.Options{
			Kind:     kind,
			Capacity: config.InitialCapacity(),
		}
		handleErr(tui.Run(&options))
	},
}

func configuredKind() (element.Kind, error) {
	return element.ParseKind(viper.GetString(key.ListElementType))
}

// Execute wires the subcommands and runs the CLI.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
