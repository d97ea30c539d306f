// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/nerdlist/nerdlist/constant"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "NERDLIST_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// The NERDLIST_CONFIG_PATH override takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Nerdlist))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Scripts resolves the directory holding user Lua scripts.
func Scripts() string {
	return ensureDir(filepath.Join(Config(), "scripts"))
}

// History resolves the file holding recently executed operation scripts.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp resolves a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Nerdlist))
}
