package history

import (
	"fmt"
	"testing"

	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	if err := config.Setup(); err != nil {
		panic(err)
	}
}

func record(n int) Record {
	return Record{Kind: "int", Capacity: 2, Lines: []string{fmt.Sprintf("insert %d", n)}}
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		So(Clear(), ShouldBeNil)
		viper.Set(key.HistorySave, true)
		viper.Set(key.HistorySize, 3)

		last, err := Last()
		So(err, ShouldBeNil)
		So(last.IsAbsent(), ShouldBeTrue)

		Convey("When remembering a script", func() {
			So(Remember(record(1)), ShouldBeNil)

			Convey("Then it becomes the last one", func() {
				last, err := Last()
				So(err, ShouldBeNil)
				So(last.MustGet().Lines, ShouldResemble, []string{"insert 1"})
			})
		})

		Convey("When remembering more scripts than the history holds", func() {
			for i := 1; i <= 5; i++ {
				So(Remember(record(i)), ShouldBeNil)
			}

			Convey("Then only the newest ones are kept, oldest first", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 3)
				So(saved[0].Lines[0], ShouldEqual, "insert 3")
				So(saved[2].Lines[0], ShouldEqual, "insert 5")
			})
		})

		Convey("When saving is disabled", func() {
			viper.Set(key.HistorySave, false)
			So(Remember(record(9)), ShouldBeNil)

			Convey("Then nothing is written", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldBeEmpty)
			})
		})
	})
}
