package session

import (
	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/element"
	"github.com/nerdlist/nerdlist/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type typed[T any] struct {
	kind            element.Kind
	codec           element.Codec[T]
	list            arraylist.List[T]
	initialCapacity int
	opts            []arraylist.Option
}

func newTyped[T any](kind element.Kind, codec element.Codec[T], initialCapacity int, opts []arraylist.Option) (Session, error) {
	s := &typed[T]{
		kind:            kind,
		codec:           codec,
		initialCapacity: initialCapacity,
		opts:            opts,
	}

	if err := s.list.Init(initialCapacity, opts...); err != nil {
		return nil, err
	}

	log.Debugf("created %s list with capacity %d", kind, initialCapacity)
	return s, nil
}

func (s *typed[T]) Kind() element.Kind {
	return s.kind
}

// track logs the outcome of a mutating operation and passes err through.
func (s *typed[T]) track(op string, err error) error {
	if err != nil {
		log.Warnf("%s on %s list failed: %v", op, s.kind, err)
		return err
	}
	log.Debugf("%s on %s list: len=%d cap=%d", op, s.kind, s.list.Len(), s.list.Cap())
	return nil
}

func (s *typed[T]) Insert(raw string) error {
	value, err := s.codec.Parse(raw)
	if err != nil {
		return err
	}

	before := s.list.Cap()
	err = s.track("insert", s.list.Insert(value))
	if err == nil && s.list.Cap() != before {
		log.Infof("%s list grew from %d to %d slots", s.kind, before, s.list.Cap())
	}
	return err
}

func (s *typed[T]) Get(index int) mo.Option[string] {
	if value, ok := s.list.Get(index).Get(); ok {
		return mo.Some(s.codec.Format(value))
	}
	return mo.None[string]()
}

func (s *typed[T]) At(index int) (string, error) {
	value, err := s.list.At(index)
	if err != nil {
		return "", err
	}
	return s.codec.Format(value), nil
}

func (s *typed[T]) Set(index int, raw string) error {
	value, err := s.codec.Parse(raw)
	if err != nil {
		return err
	}
	return s.track("set", s.list.Set(index, value))
}

func (s *typed[T]) Delete(index int) error {
	return s.track("delete", s.list.Delete(index))
}

func (s *typed[T]) FastDelete(index int) error {
	return s.track("fastdelete", s.list.FastDelete(index))
}

func (s *typed[T]) Contains(raw string) (bool, error) {
	value, err := s.codec.Parse(raw)
	if err != nil {
		return false, err
	}
	return s.list.ContainsFunc(value, s.codec.Equal), nil
}

func (s *typed[T]) IndexOf(raw string) (mo.Option[int], error) {
	value, err := s.codec.Parse(raw)
	if err != nil {
		return mo.None[int](), err
	}

	_, index, found := lo.FindIndexOf(s.list.Snapshot(), func(v T) bool {
		return s.codec.Equal(v, value)
	})
	if !found {
		return mo.None[int](), nil
	}
	return mo.Some(index), nil
}

func (s *typed[T]) Len() int {
	return s.list.Len()
}

func (s *typed[T]) Cap() int {
	return s.list.Cap()
}

func (s *typed[T]) Values() []string {
	return lo.Map(s.list.Snapshot(), func(v T, _ int) string {
		return s.codec.Format(v)
	})
}

func (s *typed[T]) Destroy() {
	s.list.Destroy()
	log.Debugf("destroyed %s list", s.kind)
}

func (s *typed[T]) Reset() error {
	s.list.Destroy()
	return s.track("reset", s.list.Init(s.initialCapacity, s.opts...))
}
