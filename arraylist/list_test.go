package arraylist

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func filled(t *testing.T, capacity int, values ...int) *List[int] {
	l, err := New[int](capacity)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range values {
		if err := l.Insert(v); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func TestNew(t *testing.T) {
	Convey("Given a requested initial capacity", t, func() {
		Convey("A positive capacity allocates exactly that many slots", func() {
			l, err := New[string](3)
			So(err, ShouldBeNil)
			So(l.Cap(), ShouldEqual, 3)
			So(l.Len(), ShouldEqual, 0)
		})

		Convey("Zero and negative capacities are rejected", func() {
			for _, c := range []int{0, -1} {
				l, err := New[string](c)
				So(l, ShouldBeNil)
				So(errors.Is(err, ErrInvalidCapacity), ShouldBeTrue)
			}
		})

		Convey("A buffer over the byte limit fails without returning a list", func() {
			l, err := New[int64](4, WithMaxBytes(16))
			So(l, ShouldBeNil)
			So(errors.Is(err, ErrAllocation), ShouldBeTrue)
		})
	})
}

func TestInit(t *testing.T) {
	Convey("Given a caller-owned list", t, func() {
		var l List[int64]

		Convey("Before Init every operation reports an unusable list", func() {
			So(errors.Is(l.Insert(1), ErrUnusable), ShouldBeTrue)
			So(l.Get(0).IsAbsent(), ShouldBeTrue)
		})

		Convey("Init allocates the buffer in place", func() {
			So(l.Init(2), ShouldBeNil)
			So(l.Insert(7), ShouldBeNil)
			So(l.Get(0).MustGet(), ShouldEqual, 7)
			So(l.Cap(), ShouldEqual, 2)
		})

		Convey("A failed Init keeps capacity and length but leaves the list unusable", func() {
			err := l.Init(4, WithMaxBytes(8))
			So(errors.Is(err, ErrAllocation), ShouldBeTrue)
			So(l.Cap(), ShouldEqual, 4)
			So(l.Len(), ShouldEqual, 0)
			So(errors.Is(l.Insert(1), ErrUnusable), ShouldBeTrue)
			So(l.Snapshot(), ShouldBeNil)
		})

		Convey("An embedded list works through its parent", func() {
			type holder struct {
				names List[string]
			}
			var h holder
			So(h.names.Init(1), ShouldBeNil)
			So(h.names.Insert("a"), ShouldBeNil)
			So(h.names.Insert("b"), ShouldBeNil)
			So(h.names.Snapshot(), ShouldResemble, []string{"a", "b"})
		})
	})
}

func TestInsertGrowth(t *testing.T) {
	Convey("Given a list with initial capacity 2", t, func() {
		l := filled(t, 2)

		Convey("Inserting 1, 2, 3 doubles the capacity once", func() {
			So(l.Insert(1), ShouldBeNil)
			So(l.Insert(2), ShouldBeNil)
			So(l.Cap(), ShouldEqual, 2)
			So(l.Insert(3), ShouldBeNil)
			So(l.Cap(), ShouldEqual, 4)
			So(l.Len(), ShouldEqual, 3)
			So(l.Get(0).MustGet(), ShouldEqual, 1)
			So(l.Get(1).MustGet(), ShouldEqual, 2)
			So(l.Get(2).MustGet(), ShouldEqual, 3)
		})
	})

	Convey("Capacity is always the smallest power-of-two multiple of the initial capacity that fits", t, func() {
		for _, c0 := range []int{1, 3, 5} {
			l := filled(t, c0)
			for k := 1; k <= 100; k++ {
				So(l.Insert(k), ShouldBeNil)

				want := c0
				for want < k {
					want *= 2
				}
				So(l.Len(), ShouldEqual, k)
				So(l.Cap(), ShouldEqual, want)
			}
		}
	})

	Convey("Given a capacity limit", t, func() {
		l, err := New[int](2, WithMaxCapacity(4))
		So(err, ShouldBeNil)
		for i := 0; i < 4; i++ {
			So(l.Insert(i), ShouldBeNil)
		}

		Convey("A growth past the limit fails and keeps the previous state", func() {
			err := l.Insert(99)
			So(errors.Is(err, ErrAllocation), ShouldBeTrue)
			So(l.Len(), ShouldEqual, 4)
			So(l.Cap(), ShouldEqual, 4)
			So(l.Snapshot(), ShouldResemble, []int{0, 1, 2, 3})
		})

		Convey("Later operations still work on the intact buffer", func() {
			_ = l.Insert(99)
			So(l.Set(3, 30), ShouldBeNil)
			So(l.Delete(0), ShouldBeNil)
			So(l.Insert(40), ShouldBeNil)
			So(l.Snapshot(), ShouldResemble, []int{1, 2, 30, 40})
		})
	})

	Convey("Given a byte limit", t, func() {
		l, err := New[int64](1, WithMaxBytes(16))
		So(err, ShouldBeNil)
		So(l.Insert(1), ShouldBeNil)
		So(l.Insert(2), ShouldBeNil)
		So(errors.Is(l.Insert(3), ErrAllocation), ShouldBeTrue)
		So(l.Cap(), ShouldEqual, 2)
	})
}

func TestSetGet(t *testing.T) {
	Convey("Given the list [10, 20, 30]", t, func() {
		l := filled(t, 4, 10, 20, 30)

		Convey("Set then Get round-trips at every valid index", func() {
			for i := 0; i < l.Len(); i++ {
				So(l.Set(i, i*7), ShouldBeNil)
				So(l.Get(i).MustGet(), ShouldEqual, i*7)
			}
		})

		Convey("Set at Len() fails and does not extend the list", func() {
			err := l.Set(3, 40)
			So(errors.Is(err, ErrOutOfBounds), ShouldBeTrue)
			So(l.Len(), ShouldEqual, 3)
			So(l.Cap(), ShouldEqual, 4)
			So(l.Snapshot(), ShouldResemble, []int{10, 20, 30})
		})

		Convey("Negative indices are out of bounds", func() {
			So(errors.Is(l.Set(-1, 0), ErrOutOfBounds), ShouldBeTrue)
			So(l.Get(-1).IsAbsent(), ShouldBeTrue)
		})

		Convey("At explains a miss", func() {
			v, err := l.At(1)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 20)

			_, err = l.At(5)
			So(errors.Is(err, ErrOutOfBounds), ShouldBeTrue)
		})
	})

	Convey("Given an empty list", t, func() {
		l := filled(t, 1)
		So(l.Get(0).IsAbsent(), ShouldBeTrue)
		So(Contains(l, 0), ShouldBeFalse)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given the list [10, 20, 30]", t, func() {
		l := filled(t, 4, 10, 20, 30)

		Convey("Delete(1) keeps order", func() {
			So(l.Delete(1), ShouldBeNil)
			So(l.Snapshot(), ShouldResemble, []int{10, 30})
			So(l.Len(), ShouldEqual, 2)
			So(Contains(l, 20), ShouldBeFalse)
		})

		Convey("Deleting the last element simply shortens the list", func() {
			So(l.Delete(2), ShouldBeNil)
			So(l.Snapshot(), ShouldResemble, []int{10, 20})
		})

		Convey("Out of range deletes change nothing", func() {
			for _, i := range []int{3, 10, -1} {
				So(errors.Is(l.Delete(i), ErrOutOfBounds), ShouldBeTrue)
			}
			So(l.Snapshot(), ShouldResemble, []int{10, 20, 30})
			So(l.Cap(), ShouldEqual, 4)
		})

		Convey("Capacity does not shrink", func() {
			for l.Len() > 0 {
				So(l.Delete(0), ShouldBeNil)
			}
			So(l.Cap(), ShouldEqual, 4)
		})
	})

	Convey("Deleting from a longer list preserves the relative order of the rest", t, func() {
		l := filled(t, 1, 0, 1, 2, 3, 4, 5, 6, 7)
		So(l.Delete(3), ShouldBeNil)
		So(l.Snapshot(), ShouldResemble, []int{0, 1, 2, 4, 5, 6, 7})
	})
}

func TestFastDelete(t *testing.T) {
	Convey("Given the list [10, 20, 30]", t, func() {
		l := filled(t, 4, 10, 20, 30)

		Convey("FastDelete(0) moves the last element into the gap", func() {
			So(l.FastDelete(0), ShouldBeNil)
			So(l.Snapshot(), ShouldResemble, []int{30, 20})
			So(l.Len(), ShouldEqual, 2)
		})

		Convey("FastDelete of the last index removes it", func() {
			So(l.FastDelete(2), ShouldBeNil)
			So(l.Snapshot(), ShouldResemble, []int{10, 20})
		})

		Convey("Out of range fast deletes change nothing", func() {
			So(errors.Is(l.FastDelete(3), ErrOutOfBounds), ShouldBeTrue)
			So(l.Snapshot(), ShouldResemble, []int{10, 20, 30})
		})
	})

	Convey("Vacated slots are zeroed", t, func() {
		l, err := New[*int](2)
		So(err, ShouldBeNil)
		a, b := 1, 2
		So(l.Insert(&a), ShouldBeNil)
		So(l.Insert(&b), ShouldBeNil)
		So(l.FastDelete(0), ShouldBeNil)
		So(l.buffer[1], ShouldBeNil)
	})
}

func TestContains(t *testing.T) {
	Convey("Given the list [a, b, a]", t, func() {
		l, err := New[string](2)
		So(err, ShouldBeNil)
		for _, s := range []string{"a", "b", "a"} {
			So(l.Insert(s), ShouldBeNil)
		}

		So(Contains(l, "a"), ShouldBeTrue)
		So(Contains(l, "c"), ShouldBeFalse)
		So(IndexOf(l, "b").MustGet(), ShouldEqual, 1)
		So(IndexOf(l, "c").IsAbsent(), ShouldBeTrue)

		Convey("Elements past Len() are never matched", func() {
			So(l.Delete(1), ShouldBeNil)
			So(Contains(l, "b"), ShouldBeFalse)
		})

		Convey("ContainsFunc uses the supplied equality", func() {
			caseless := func(x, y string) bool { return x == y || x == "A" && y == "a" || x == "a" && y == "A" }
			So(l.ContainsFunc("A", caseless), ShouldBeTrue)
			So(l.ContainsFunc("B", caseless), ShouldBeFalse)
		})
	})
}

func TestDestroy(t *testing.T) {
	Convey("Given a destroyed list", t, func() {
		l := filled(t, 2, 1, 2, 3)
		l.Destroy()
		l.Destroy()

		So(l.Len(), ShouldEqual, 0)
		So(l.Cap(), ShouldEqual, 0)
		So(errors.Is(l.Insert(4), ErrDestroyed), ShouldBeTrue)
		So(errors.Is(l.Set(0, 4), ErrDestroyed), ShouldBeTrue)
		So(errors.Is(l.Delete(0), ErrDestroyed), ShouldBeTrue)
		So(errors.Is(l.FastDelete(0), ErrDestroyed), ShouldBeTrue)
		So(l.Get(0).IsAbsent(), ShouldBeTrue)
		So(Contains(l, 1), ShouldBeFalse)

		Convey("Init makes it usable again", func() {
			So(l.Init(1), ShouldBeNil)
			So(l.Insert(5), ShouldBeNil)
			So(l.Snapshot(), ShouldResemble, []int{5})
		})
	})
}

func TestString(t *testing.T) {
	Convey("String lists live elements and bookkeeping", t, func() {
		l := filled(t, 2, 1, 2, 3)
		So(l.String(), ShouldEqual, "[1, 2, 3] len=3 cap=4")
	})
}

func TestAliases(t *testing.T) {
	Convey("Named instantiations are the same type as the generic list", t, func() {
		var ints IntList
		So(ints.Init(1), ShouldBeNil)
		So(ints.Insert(42), ShouldBeNil)

		var generic *List[int] = &ints
		So(Contains(generic, 42), ShouldBeTrue)
	})
}
