package seq

import (
	"github.com/darkrodry/fpinscala/fp"
)

/*
Remarks:
--------

- Every derived operation below is an instance of one of the two fold
  primitives. The fold carries the complexity class; the instance only
  picks zero value and combinator.

- FoldRight recurses, FoldLeft loops. Which one an operation is bound to
  is part of its contract (stack behaviour, association order), not an
  implementation detail.
*/

// FoldRight collapses a sequence from the tail inward:
//
//     FoldRight(⟨a b c⟩, z, f)  ⟹  f(a, f(b, f(c, z)))
//
// FoldRight is not tail-recursive: the call depth equals the sequence
// length. This is deliberate — it is what lets a combinator build a result
// that shares structure with z (see Append). For very long sequences use
// FoldLeft or FoldRightViaLeft instead.
func FoldRight[T, R any](s Seq[T], zero R, f func(T, R) R) R {
	return foldr(s.node, zero, f)
}

func foldr[T, R any](node *cell[T], zero R, f func(T, R) R) R {
	if node == nil {
		return zero
	}
	return f(node.head, foldr(node.tail, zero, f))
}

// FoldLeft accumulates front-to-back:
//
//     FoldLeft(⟨a b c⟩, z, f)  ⟹  f(f(f(z, a), b), c)
//
// FoldLeft runs in constant stack space regardless of sequence length.
func FoldLeft[T, R any](s Seq[T], zero R, f func(R, T) R) R {
	acc := zero
	for n := s.node; n != nil; n = n.tail {
		acc = f(acc, n.head)
	}
	return acc
}

// FoldRightViaLeft computes the same result as FoldRight, but in constant
// stack space, by reversing the sequence and flipping the combinator's
// argument order.
func FoldRightViaLeft[T, R any](s Seq[T], zero R, f func(T, R) R) R {
	return FoldLeft(Reverse(s), zero, func(acc R, h T) R {
		return f(h, acc)
	})
}

// FoldLeftViaRight computes the same result as FoldLeft by folding the
// sequence into a function from accumulator to accumulator. It exists to
// demonstrate the duality of the two folds; FoldLeft is the form to use.
func FoldLeftViaRight[T, R any](s Seq[T], zero R, f func(R, T) R) R {
	id := func(acc R) R { return acc }
	g := FoldRight(s, id, func(h T, cont func(R) R) func(R) R {
		return func(acc R) R {
			return cont(f(acc, h))
		}
	})
	return g(zero)
}

// --- Derived operations ------------------------------------------------------

// Sum adds up all elements. The sum of the empty sequence is 0.
func Sum[T fp.Number](s Seq[T]) T {
	var zero T
	return FoldLeft(s, zero, func(a, b T) T { return a + b })
}

// Product multiplies all elements. The product of the empty sequence is 1.
// A zero head short-circuits the recursion: the remainder of the sequence
// is not visited.
func Product[T fp.Number](s Seq[T]) T {
	if s.node == nil {
		return 1
	}
	if s.node.head == 0 {
		tracer().Debugf("product: zero head, short-circuiting")
		return 0
	}
	return s.node.head * Product(s.Tail())
}

// Length counts elements with a right fold (see also Seq.Len, which loops).
func Length[T any](s Seq[T]) int {
	return FoldRight(s, 0, func(_ T, n int) int { return n + 1 })
}

// Reverse returns the sequence in reverse order. One pass, O(n).
func Reverse[T any](s Seq[T]) Seq[T] {
	return FoldLeft(s, Empty[T](), func(acc Seq[T], h T) Seq[T] {
		return Cons(h, acc)
	})
}

// Append concatenates two sequences. It rebuilds a's spine and shares b's
// without copying: folding a to the right with Cons plugs b in as the
// terminal zero value.
func Append[T any](a, b Seq[T]) Seq[T] {
	return FoldRight(a, b, Cons[T])
}

// Concat flattens a sequence of sequences into one.
func Concat[T any](ss Seq[Seq[T]]) Seq[T] {
	return FoldLeft(ss, Empty[T](), Append[T])
}

// Map applies f to every element, building a fresh sequence.
func Map[T, S any](s Seq[T], f func(T) S) Seq[S] {
	return FoldRight(s, Empty[S](), func(h T, acc Seq[S]) Seq[S] {
		return Cons(f(h), acc)
	})
}

// Filter keeps the elements for which pred holds.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return FoldRight(s, Empty[T](), func(h T, acc Seq[T]) Seq[T] {
		if pred(h) {
			return Cons(h, acc)
		}
		return acc
	})
}

// FlatMap maps every element to a sequence and concatenates the results.
func FlatMap[T, S any](s Seq[T], f func(T) Seq[S]) Seq[S] {
	return FoldRight(s, Empty[S](), func(h T, acc Seq[S]) Seq[S] {
		return Append(f(h), acc)
	})
}

// ZipWith combines two sequences pairwise. The result is as long as the
// shorter input; surplus elements of the longer one are ignored.
func ZipWith[A, B, C any](a Seq[A], b Seq[B], f func(A, B) C) Seq[C] {
	if a.node == nil || b.node == nil {
		return Empty[C]()
	}
	return Cons(f(a.node.head, b.node.head), ZipWith(a.Tail(), b.Tail(), f))
}

// Zip pairs up two sequences, truncating to the shorter one.
func Zip[A, B comparable](a Seq[A], b Seq[B]) Seq[fp.Pair[A, B]] {
	return ZipWith(a, b, fp.P[A, B])
}

// StartsWith reports whether sub is a prefix of sup. The empty sequence
// is a prefix of everything.
func StartsWith[T comparable](sup, sub Seq[T]) bool {
	x, y := sup.node, sub.node
	for y != nil {
		if x == nil || x.head != y.head {
			return false
		}
		x, y = x.tail, y.tail
	}
	return true
}

// HasSubsequence reports whether sub occurs contiguously anywhere in sup.
// Prefixes are probed at element offsets only, so an empty sup contains no
// subsequence, not even the empty one.
func HasSubsequence[T comparable](sup, sub Seq[T]) bool {
	offset := 0
	for n := sup.node; n != nil; n = n.tail {
		if StartsWith(Seq[T]{node: n}, sub) {
			tracer().Debugf("subsequence %v found at offset %d", sub, offset)
			return true
		}
		offset++
	}
	return false
}
