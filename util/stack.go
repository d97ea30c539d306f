package util

import "github.com/nerdlist/nerdlist/arraylist"

const stackInitialCapacity = 8

// Stack is a LIFO built on an arraylist. The zero value is ready to use.
type Stack[T any] struct {
	items arraylist.List[T]
}

func (s *Stack[T]) ensure() {
	if s.items.Cap() == 0 {
		_ = s.items.Init(stackInitialCapacity)
	}
}

// Push places item on top. It reports false when the backing list could not grow.
func (s *Stack[T]) Push(item T) bool {
	s.ensure()
	return s.items.Insert(item) == nil
}

// Pop removes and returns the top element; the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	top := s.items.Len() - 1
	item = s.items.Get(top).OrEmpty()
	_ = s.items.Delete(top)
	return
}

// Peek returns the top element without removing it; the zero value when empty.
func (s *Stack[T]) Peek() (item T) {
	return s.items.Get(s.items.Len() - 1).OrEmpty()
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return s.items.Len()
}

// Clear empties the stack.
func (s *Stack[T]) Clear() {
	s.items.Destroy()
	s.items = arraylist.List[T]{}
}
