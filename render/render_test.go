package render

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/nerdlist/nerdlist/element"
	"github.com/nerdlist/nerdlist/script"
	"github.com/nerdlist/nerdlist/session"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func sampleReport() *script.Report {
	s, err := session.New(element.Int, 2)
	So(err, ShouldBeNil)

	commands, err := script.Parse("insert 1 2 3\nget 7\ndump")
	So(err, ShouldBeNil)

	report, err := script.Execute(s, commands, script.Options{})
	So(err, ShouldBeNil)
	return report
}

func rendered(report *script.Report, format Format) string {
	var b bytes.Buffer
	So(Report(&b, report, format), ShouldBeNil)
	return b.String()
}

func TestParseFormat(t *testing.T) {
	Convey("Known formats parse regardless of case", t, func() {
		f, err := ParseFormat(" YAML ")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, YAML)
	})

	Convey("Typos get a suggestion", t, func() {
		_, err := ParseFormat("jsno")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `did you mean "json"`)
	})
}

func TestReport(t *testing.T) {
	Convey("Given a report with growth and a failure", t, func() {
		report := sampleReport()

		Convey("JSON decodes back to the same steps", func() {
			var decoded script.Report
			So(json.Unmarshal([]byte(rendered(report, JSON)), &decoded), ShouldBeNil)
			So(decoded.Steps, ShouldHaveLength, 5)
			So(decoded.Steps[2].Grew, ShouldBeTrue)
			So(decoded.Final, ShouldResemble, []string{"1", "2", "3"})
			So(decoded.Failures, ShouldEqual, 1)
		})

		Convey("YAML carries the same bookkeeping", func() {
			var decoded map[string]any
			So(yaml.Unmarshal([]byte(rendered(report, YAML)), &decoded), ShouldBeNil)
			So(decoded["kind"], ShouldEqual, "int")
			So(decoded["cap"], ShouldEqual, 4)
			So(decoded["len"], ShouldEqual, 3)
		})

		Convey("The tree shows steps and the buffer layout", func() {
			out := rendered(report, Tree)
			So(out, ShouldContainSubstring, "int list")
			So(out, ShouldContainSubstring, "1: insert 3")
			So(out, ShouldContainSubstring, "[2] 3")
			So(out, ShouldContainSubstring, "[3..4) spare")
			So(out, ShouldNotContainSubstring, "[3] spare")
			So(out, ShouldContainSubstring, "grew")
		})

		Convey("The tree stays small when capacity dwarfs length", func() {
			report.Cap = 1 << 20
			out := rendered(report, Tree)
			So(out, ShouldContainSubstring, "[3..1048576) spare")
			So(bytes.Count([]byte(out), []byte("spare")), ShouldEqual, 1)
		})

		Convey("A full buffer has no spare node", func() {
			report.Cap = len(report.Final)
			So(rendered(report, Tree), ShouldNotContainSubstring, "spare")
		})

		Convey("Text summarizes the list", func() {
			out := rendered(report, Text)
			So(out, ShouldContainSubstring, "3 elements, 4 slots, 1 failure")
			So(out, ShouldContainSubstring, "index out of bounds")
		})

		Convey("Unknown formats are rejected", func() {
			var b bytes.Buffer
			So(Report(&b, report, Format("xml")), ShouldNotBeNil)
		})
	})
}

func TestSlots(t *testing.T) {
	Convey("A grid holds one cell per slot", t, func() {
		grid := SlotGrid([]string{"1", "2", "3"}, 8, 20)
		So(grid, ShouldContainSubstring, "1")
		So(grid, ShouldContainSubstring, "3")
		So(len(bytes.Split([]byte(grid), []byte("\n"))), ShouldBeGreaterThan, 3)
	})

	Convey("An empty capacity draws nothing", t, func() {
		So(SlotGrid(nil, 0, 80), ShouldBeEmpty)
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema describes the report", t, func() {
		var b bytes.Buffer
		So(WriteSchema(&b), ShouldBeNil)
		So(b.String(), ShouldContainSubstring, "initial_capacity")
		So(b.String(), ShouldContainSubstring, "Capacity after the operation")
	})
}
