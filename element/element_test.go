package element

import (
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		Convey("Accepts every known kind regardless of case", func() {
			for _, k := range Kinds() {
				parsed, err := ParseKind(" " + string(k) + " ")
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, k)
			}
			k, err := ParseKind("UUID")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, UUID)
		})

		Convey("Suggests the closest kind", func() {
			_, err := ParseKind("dec")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "decimal"`)
		})

		Convey("Lists the kinds when nothing is close", func() {
			_, err := ParseKind("quaternion")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "expected one of")
		})
	})
}

func TestCodecs(t *testing.T) {
	Convey("Int", t, func() {
		v, err := IntCodec.Parse("-12")
		So(err, ShouldBeNil)
		So(IntCodec.Format(v), ShouldEqual, "-12")
		_, err = IntCodec.Parse("1.5")
		So(err, ShouldNotBeNil)
	})

	Convey("Float", t, func() {
		v, err := FloatCodec.Parse("2.50")
		So(err, ShouldBeNil)
		So(FloatCodec.Format(v), ShouldEqual, "2.5")
	})

	Convey("String formats quoted", t, func() {
		v, _ := StringCodec.Parse("a b")
		So(StringCodec.Format(v), ShouldEqual, `"a b"`)

		back, err := StringCodec.Parse(StringCodec.Format(v))
		So(err, ShouldBeNil)
		So(back, ShouldEqual, "a b")
	})

	Convey("Bool", t, func() {
		v, err := BoolCodec.Parse("true")
		So(err, ShouldBeNil)
		So(v, ShouldBeTrue)
		_, err = BoolCodec.Parse("yes please")
		So(err, ShouldNotBeNil)
	})

	Convey("UUID", t, func() {
		fresh, err := UUIDCodec.Parse("new")
		So(err, ShouldBeNil)
		So(fresh, ShouldNotEqual, uuid.Nil)

		parsed, err := UUIDCodec.Parse(fresh.String())
		So(err, ShouldBeNil)
		So(UUIDCodec.Equal(parsed, fresh), ShouldBeTrue)
	})

	Convey("Decimal equality is numeric", t, func() {
		a, err := DecimalCodec.Parse("1.50")
		So(err, ShouldBeNil)
		b, err := DecimalCodec.Parse("1.5")
		So(err, ShouldBeNil)
		So(DecimalCodec.Equal(a, b), ShouldBeTrue)
		So(DecimalCodec.Format(b), ShouldEqual, "1.5")
	})
}
