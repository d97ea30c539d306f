package cmd

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/constant"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/luabind"
	"github.com/nerdlist/nerdlist/util"
	"github.com/nerdlist/nerdlist/where"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("new", "n", "", "Scaffold a new script with the given name in the scripts directory")
	runCmd.SetOut(os.Stdout)
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a Lua script with the arraylist module",
	Long: `Execute a Lua 5.1 script. Scripts load the list bindings with require("` + constant.LuaModule + `").
A bare name is looked up in the scripts directory when no such file exists.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  nerdlist run ./fill.lua
  nerdlist run --new fill`,
	Run: func(cmd *cobra.Command, args []string) {
		if name := lo.Must(cmd.Flags().GetString("new")); name != "" {
			target, err := scaffoldScript(name)
			handleErr(err)
			cmd.Println(target)
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("a script file is required"))
		}

		path, err := resolveScript(args[0])
		handleErr(err)
		handleErr(luabind.Run(path))
	},
}

func resolveScript(name string) (string, error) {
	fs := filesystem.API()
	if exists, err := afero.Exists(fs, name); err != nil || exists {
		return name, err
	}

	candidate := filepath.Join(where.Scripts(), name)
	if !strings.HasSuffix(candidate, ".lua") {
		candidate += ".lua"
	}
	if exists, _ := afero.Exists(fs, candidate); exists {
		return candidate, nil
	}
	return "", errors.New("script not found: " + name)
}

func scaffoldScript(name string) (string, error) {
	author := "Anonymous"
	if usr, err := user.Current(); err == nil {
		author = usr.Username
	}

	s := struct {
		Name     string
		Author   string
		Module   string
		Capacity int
	}{
		Name:     name,
		Author:   author,
		Module:   constant.LuaModule,
		Capacity: config.InitialCapacity(),
	}

	funcMap := template.FuncMap{
		"repeat": strings.Repeat,
		"plus":   func(a, b int) int { return a + b },
		"max":    util.Max[int],
	}

	tmpl, err := template.New("script").Funcs(funcMap).Parse(constant.ScriptTemplate)
	if err != nil {
		return "", err
	}

	target := filepath.Join(where.Scripts(), util.SanitizeFilename(name)+".lua")
	f, err := filesystem.API().Create(target)
	if err != nil {
		return "", err
	}
	defer util.Ignore(f.Close)

	return target, tmpl.Execute(f, s)
}
