package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/darkrodry/fpinscala/maybe"
)

// ErrEmpty is returned by operations which need at least one element to
// work on, but have been handed an empty sequence.
var ErrEmpty = errors.New("sequence is empty")

// Seq is an immutable singly-linked sequence. The zero value is usable as
// an empty sequence, i.e. this is legal:
//
//     var s seq.Seq[int]
//     s = seq.Cons(1, s)
//
// returning a one-element sequence ⟨1⟩.
//
// Seq is a small value-type handle onto a pointer-linked spine. Copying a
// Seq copies the handle only; the spine is shared. As no operation ever
// mutates a spine cell, sharing is safe, including concurrent reads.
type Seq[T any] struct {
	node *cell[T]
}

// cell is one link of the spine. A cell owns its head and links to an
// already-finished tail, therefore chains are always finite and acyclic.
type cell[T any] struct {
	head T
	tail *cell[T]
}

// Empty returns the empty sequence. It is equivalent to the zero value.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Cons links a new head element onto a tail sequence. The tail's spine is
// shared, not copied: Cons is O(1).
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return Seq[T]{node: &cell[T]{head: head, tail: tail.node}}
}

// Of constructs a sequence from the given elements, in argument order:
//
//     seq.Of(1, 2, 3)  ⟹  ⟨1 2 3⟩
//
// The result is structurally identical to nested calls of Cons.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice constructs a sequence holding the elements of a slice, in
// slice order. The slice is not retained.
func FromSlice[T any](items []T) Seq[T] {
	s := Seq[T]{}
	for i := len(items) - 1; i >= 0; i-- {
		s = Cons(items[i], s)
	}
	return s
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for sequences without elements.
func (s Seq[T]) IsEmpty() bool {
	return s.node == nil
}

// Len returns the number of elements. O(n).
func (s Seq[T]) Len() int {
	return FoldLeft(s, 0, func(n int, _ T) int { return n + 1 })
}

// Head returns the first element, if any.
func (s Seq[T]) Head() maybe.Maybe[T] {
	if s.node == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.node.head)
}

// Last returns the final element, if any. O(n).
func (s Seq[T]) Last() maybe.Maybe[T] {
	if s.node == nil {
		return maybe.Nothing[T]()
	}
	n := s.node
	for n.tail != nil {
		n = n.tail
	}
	return maybe.Just(n.head)
}

// Tail returns the sequence without its first element. The tail of an
// empty sequence is the empty sequence. O(1), shares the spine.
func (s Seq[T]) Tail() Seq[T] {
	if s.node == nil {
		return s
	}
	return Seq[T]{node: s.node.tail}
}

// SetHead returns a copy of the sequence with its first element replaced.
// There is nothing to replace in an empty sequence; in that case SetHead
// returns ErrEmpty.
func (s Seq[T]) SetHead(x T) (Seq[T], error) {
	if s.node == nil {
		return s, ErrEmpty
	}
	return Cons(x, s.Tail()), nil
}

// Drop returns the sequence without its first n elements, sharing the
// remainder. Dropping more elements than present yields the empty
// sequence; n ≤ 0 is a no-op. Drop never fails.
func (s Seq[T]) Drop(n int) Seq[T] {
	node := s.node
	for ; n > 0 && node != nil; n-- {
		node = node.tail
	}
	return Seq[T]{node: node}
}

// DropWhile removes elements from the front as long as pred holds, and
// returns the shared remainder.
func (s Seq[T]) DropWhile(pred func(T) bool) Seq[T] {
	node := s.node
	for node != nil && pred(node.head) {
		node = node.tail
	}
	return Seq[T]{node: node}
}

// Init returns the sequence without its final element. Unlike Tail this
// cannot share the spine and has to rebuild it, element by element. The
// init of an empty sequence is the empty sequence.
func (s Seq[T]) Init() Seq[T] {
	if s.node == nil || s.node.tail == nil {
		return Seq[T]{}
	}
	return Cons(s.node.head, s.Tail().Init())
}

// Slice returns the elements of the sequence as a fresh Go slice.
func (s Seq[T]) Slice() []T {
	var items []T
	for n := s.node; n != nil; n = n.tail {
		items = append(items, n.head)
	}
	return items
}

func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteString("⟨")
	for n := s.node; n != nil; n = n.tail {
		if n != s.node {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", n.head)
	}
	b.WriteString("⟩")
	return b.String()
}

// Equal compares two sequences element by element.
func Equal[T comparable](a, b Seq[T]) bool {
	x, y := a.node, b.node
	for x != nil && y != nil {
		if x.head != y.head {
			return false
		}
		x, y = x.tail, y.tail
	}
	return x == nil && y == nil
}

// --- Matching --------------------------------------------------------------

// Match supports pattern-matching on the two sequence variants:
//
//     var h int
//     var t Seq[int]
//     switch m := s.Match(); m {
//     case m.Cons(&h, &t):
//         …
//     case m.Empty():
//         …
//     }
//
func (s Seq[T]) Match() Matcher[T] {
	return matcher[T]{s: s}
}

type Matcher[T any] interface {
	Cons(*T, *Seq[T]) Matcher[T]
	Empty() Matcher[T]
}

type matcher[T any] struct {
	s Seq[T]
}

func (sm matcher[T]) Cons(h *T, t *Seq[T]) Matcher[T] {
	if sm.s.node != nil {
		*h = sm.s.node.head
		*t = sm.s.Tail()
		return sm
	}
	return nil
}

func (sm matcher[T]) Empty() Matcher[T] {
	if sm.s.node == nil {
		return sm
	}
	return nil
}
