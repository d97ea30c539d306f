package util

import (
	"testing"

	"github.com/nerdlist/nerdlist/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		So(SanitizeFilename("my script?.lua"), ShouldEqual, "my_script_.lua")
		So(SanitizeFilename("grow__trace"), ShouldEqual, "grow_trace")
		So(SanitizeFilename("-list-"), ShouldEqual, "list")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "slot", "slots"), ShouldEqual, "1 slot")
		So(Quantify(4, "slot", "slots"), ShouldEqual, "4 slots")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("scripts/fill.lua"), ShouldEqual, "fill")
		So(FileStem("fill"), ShouldEqual, "fill")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete removes files and directories", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/nested/dir", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/nested/file", []byte("x"), 0o644), ShouldBeNil)

		So(Delete("/tmp/nested/file"), ShouldBeNil)
		So(Delete("/tmp/nested"), ShouldBeNil)

		exists, err := fs.Exists("/tmp/nested")
		So(err, ShouldBeNil)
		So(exists, ShouldBeFalse)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		So(s.Push(1), ShouldBeTrue)
		So(s.Push(2), ShouldBeTrue)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)

		Convey("Grows past its initial capacity", func() {
			for i := 0; i < 100; i++ {
				So(s.Push(i), ShouldBeTrue)
			}
			So(s.Len(), ShouldEqual, 100)
			So(s.Peek(), ShouldEqual, 99)
		})

		Convey("Clear resets it to a usable empty stack", func() {
			s.Push(3)
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
			So(s.Push(4), ShouldBeTrue)
			So(s.Peek(), ShouldEqual, 4)
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		candidates := []string{"insert", "delete", "fastdelete", "contains"}

		Convey("Completes prefixes", func() {
			So(Suggest("ins", candidates).MustGet(), ShouldEqual, "insert")
			So(Suggest("cont", candidates).MustGet(), ShouldEqual, "contains")
		})

		Convey("Corrects small typos", func() {
			So(Suggest("dleete", candidates).MustGet(), ShouldEqual, "delete")
		})

		Convey("Gives up on unrelated input", func() {
			So(Suggest("zzzzzzzz", candidates).IsAbsent(), ShouldBeTrue)
			So(Suggest("", candidates).IsAbsent(), ShouldBeTrue)
		})
	})
}
