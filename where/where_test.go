package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, resolve := range map[string]func() string{
			"Config()":  Config,
			"Logs()":    Logs,
			"Scripts()": Scripts,
			"Temp()":    Temp,
		} {
			Convey(name, func() {
				path := resolve()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("History() lives in the config directory", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
		})

		Convey("The config path can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "nerdlist-where-test")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
		})
	})
}
