package arraylist

import (
	"fmt"
	"math"
	"unsafe"
)

// DefaultMaxBytes bounds a single buffer when no explicit byte limit is given.
const DefaultMaxBytes = 1 << 30

// Option tunes the allocation limits of a list.
type Option func(*limits)

type limits struct {
	maxCapacity int
	maxBytes    int
}

func defaultLimits() limits {
	return limits{maxBytes: DefaultMaxBytes}
}

// WithMaxCapacity caps the number of slots a buffer may hold. Zero or negative disables the cap.
func WithMaxCapacity(n int) Option {
	return func(l *limits) {
		l.maxCapacity = n
	}
}

// WithMaxBytes caps the size of a buffer in bytes. Zero or negative disables the cap.
func WithMaxBytes(n int) Option {
	return func(l *limits) {
		l.maxBytes = n
	}
}

func newLimits(opts []Option) limits {
	l := defaultLimits()
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// allocate returns a fresh buffer of exactly n slots or ErrAllocation if n breaks a limit.
func allocate[T any](n int, l limits) ([]T, error) {
	if l.maxCapacity > 0 && n > l.maxCapacity {
		return nil, fmt.Errorf("%w: %d slots exceeds max capacity %d", ErrAllocation, n, l.maxCapacity)
	}

	var zero T
	if size := int(unsafe.Sizeof(zero)); size > 0 {
		if n > math.MaxInt/size {
			return nil, fmt.Errorf("%w: %d slots overflows addressable memory", ErrAllocation, n)
		}
		if l.maxBytes > 0 && n*size > l.maxBytes {
			return nil, fmt.Errorf("%w: %d bytes exceeds max bytes %d", ErrAllocation, n*size, l.maxBytes)
		}
	}

	return make([]T, n), nil
}

// doubled returns 2*n or ErrAllocation if the product overflows int.
func doubled(n int) (int, error) {
	if n > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: capacity %d cannot double", ErrAllocation, n)
	}
	return n * 2, nil
}
