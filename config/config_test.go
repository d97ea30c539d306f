package config

import (
	"encoding/json"
	"testing"

	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(InitialCapacity(), ShouldEqual, 4)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("list.initial_capacity"), ShouldEqual, "list_initial_capacity")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the initial capacity field", t, func() {
		field := Default[key.ListInitialCapacity]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "NERDLIST_LIST_INITIAL_CAPACITY")
		})

		Convey("MarshalJSON reports its type and default", func() {
			raw, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)
			So(decoded["type"], ShouldEqual, "int")
			So(decoded["default"], ShouldEqual, float64(4))
		})
	})
}

func TestListOptions(t *testing.T) {
	Convey("Given a configured max capacity", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.ListMaxCapacity, 2)
		defer viper.Set(key.ListMaxCapacity, 0)

		Convey("Lists built from the options refuse to grow past it", func() {
			l, err := arraylist.New[int](2, ListOptions()...)
			So(err, ShouldBeNil)
			So(l.Insert(1), ShouldBeNil)
			So(l.Insert(2), ShouldBeNil)
			So(l.Insert(3), ShouldNotBeNil)
		})
	})
}
