// Package session drives a list whose element type is only known at runtime.
//
// Every operation takes and returns the textual form of elements. The concrete list is an
// arraylist.List[T] picked by the element kind, so the generic algorithm runs unchanged underneath.
package session

import (
	"fmt"

	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/element"
	"github.com/samber/mo"
)

// Session is a list of one element kind addressed through strings.
type Session interface {
	Kind() element.Kind
	Insert(raw string) error
	Get(index int) mo.Option[string]
	At(index int) (string, error)
	Set(index int, raw string) error
	Delete(index int) error
	FastDelete(index int) error
	Contains(raw string) (bool, error)
	IndexOf(raw string) (mo.Option[int], error)
	Len() int
	Cap() int
	Values() []string
	Destroy()
	// Reset destroys the list and creates a fresh one with the original capacity and limits.
	Reset() error
}

// New creates a session of the given kind holding an empty list of initialCapacity slots.
func New(kind element.Kind, initialCapacity int, opts ...arraylist.Option) (Session, error) {
	switch kind {
	case element.Int:
		return newTyped(kind, element.IntCodec, initialCapacity, opts)
	case element.Float:
		return newTyped(kind, element.FloatCodec, initialCapacity, opts)
	case element.String:
		return newTyped(kind, element.StringCodec, initialCapacity, opts)
	case element.Bool:
		return newTyped(kind, element.BoolCodec, initialCapacity, opts)
	case element.UUID:
		return newTyped(kind, element.UUIDCodec, initialCapacity, opts)
	case element.Decimal:
		return newTyped(kind, element.DecimalCodec, initialCapacity, opts)
	default:
		return nil, fmt.Errorf("unsupported element type %q", kind)
	}
}
