package arraylist

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

type state uint8

const (
	uninitialized state = iota
	ready
	unusable
	destroyed
)

// List is a growable vector of T. The zero value is not usable until Init succeeds.
type List[T any] struct {
	buffer   []T
	capacity int
	length   int
	limits   limits
	state    state
}

// New allocates a list with room for initialCapacity elements.
// The returned list is owned by the caller and must not be used after Destroy.
func New[T any](initialCapacity int, opts ...Option) (*List[T], error) {
	l := new(List[T])
	if err := l.Init(initialCapacity, opts...); err != nil {
		return nil, err
	}
	return l, nil
}

// Init prepares a caller-owned list with room for initialCapacity elements.
//
// Capacity and length are recorded before the buffer is allocated. When allocation fails the buffer
// stays nil and every operation reports ErrUnusable until Init is called again.
func (l *List[T]) Init(initialCapacity int, opts ...Option) error {
	l.limits = newLimits(opts)
	l.buffer = nil
	l.length = 0

	if initialCapacity < 1 {
		l.capacity = 0
		l.state = unusable
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, initialCapacity)
	}
	l.capacity = initialCapacity

	buffer, err := allocate[T](initialCapacity, l.limits)
	if err != nil {
		l.state = unusable
		return err
	}

	l.buffer = buffer
	l.state = ready
	return nil
}

// Destroy releases the buffer. Calling it more than once is harmless.
func (l *List[T]) Destroy() {
	l.buffer = nil
	l.capacity = 0
	l.length = 0
	l.state = destroyed
}

func (l *List[T]) usable() error {
	switch l.state {
	case ready:
		return nil
	case destroyed:
		return ErrDestroyed
	default:
		return ErrUnusable
	}
}

func (l *List[T]) inBounds(index int) error {
	if err := l.usable(); err != nil {
		return err
	}
	if index < 0 || index >= l.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, index, l.length)
	}
	return nil
}

// Len returns the number of live elements.
func (l *List[T]) Len() int {
	return l.length
}

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int {
	return l.capacity
}

// Insert appends value after the last live element, doubling the capacity first when the list is full.
// If the larger buffer cannot be allocated the list keeps its previous buffer, capacity and length.
func (l *List[T]) Insert(value T) error {
	if err := l.usable(); err != nil {
		return err
	}

	if l.length == l.capacity {
		grownCapacity, err := doubled(l.capacity)
		if err != nil {
			return err
		}

		grown, err := allocate[T](grownCapacity, l.limits)
		if err != nil {
			return err
		}

		copy(grown, l.buffer[:l.length])
		l.buffer = grown
		l.capacity = grownCapacity
	}

	l.buffer[l.length] = value
	l.length++
	return nil
}

// Set overwrites the element at index. It never extends the list.
func (l *List[T]) Set(index int, value T) error {
	if err := l.inBounds(index); err != nil {
		return err
	}

	l.buffer[index] = value
	return nil
}

// Get returns the element at index, or None when index is outside [0, Len()).
func (l *List[T]) Get(index int) mo.Option[T] {
	if l.inBounds(index) != nil {
		return mo.None[T]()
	}
	return mo.Some(l.buffer[index])
}

// At is Get with the reason for a miss.
func (l *List[T]) At(index int) (value T, err error) {
	if err = l.inBounds(index); err != nil {
		return
	}
	return l.buffer[index], nil
}

// Delete removes the element at index and shifts every later element down by one.
func (l *List[T]) Delete(index int) error {
	if err := l.inBounds(index); err != nil {
		return err
	}

	last := l.length - 1
	copy(l.buffer[index:last], l.buffer[index+1:l.length])

	var zero T
	l.buffer[last] = zero
	l.length--
	return nil
}

// FastDelete removes the element at index by moving the last element into its place.
// It runs in constant time and does not preserve order.
func (l *List[T]) FastDelete(index int) error {
	if err := l.inBounds(index); err != nil {
		return err
	}

	last := l.length - 1
	l.buffer[index] = l.buffer[last]

	var zero T
	l.buffer[last] = zero
	l.length--
	return nil
}

// ContainsFunc reports whether any live element equals value according to eq.
func (l *List[T]) ContainsFunc(value T, eq func(a, b T) bool) bool {
	return l.indexFunc(value, eq).IsPresent()
}

func (l *List[T]) indexFunc(value T, eq func(a, b T) bool) mo.Option[int] {
	if l.usable() != nil {
		return mo.None[int]()
	}

	for i := 0; i < l.length; i++ {
		if eq(l.buffer[i], value) {
			return mo.Some(i)
		}
	}
	return mo.None[int]()
}

// Snapshot returns a copy of the live elements.
func (l *List[T]) Snapshot() []T {
	if l.usable() != nil {
		return nil
	}

	values := make([]T, l.length)
	copy(values, l.buffer[:l.length])
	return values
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.length && l.state == ready; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, l.buffer[i])
	}
	b.WriteByte(']')
	fmt.Fprintf(&b, " len=%d cap=%d", l.length, l.capacity)
	return b.String()
}

// Contains reports whether any live element of l equals value.
func Contains[T comparable](l *List[T], value T) bool {
	return IndexOf(l, value).IsPresent()
}

// IndexOf returns the index of the first live element equal to value.
func IndexOf[T comparable](l *List[T], value T) mo.Option[int] {
	return l.indexFunc(value, func(a, b T) bool { return a == b })
}
