package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

{-| A `Maybe` represents a value which may or may not be there: the head of
a possibly empty sequence, the result of a lookup, an optional argument.

# Definition
@docs Maybe

# Common Helpers
@docs map, withDefault

# Chaining Maybes
@docs andThen

-}
*/

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Unwrap() (T, bool)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Unwrap returns the contained value in comma-ok style.
func (m maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

// AndThen chains a Maybe into a function which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value contained in x, if any. Other than the
// Maybe.Map method, it may change the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// OrElse returns x if it holds a value, otherwise y.
func OrElse[T any](x, y Maybe[T]) Maybe[T] {
	if _, ok := x.Unwrap(); ok {
		return x
	}
	return y
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
