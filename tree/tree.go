package tree

import (
	"fmt"

	"github.com/darkrodry/fpinscala/fp"
)

// Tree is an immutable binary tree over element type T. It is a closed sum
// of exactly two variants, Leaf and Branch; clients may type-switch over
// them. There is no empty tree: every tree holds at least one leaf.
type Tree[T any] interface {
	isTree()
	fmt.Stringer
}

// Leaf holds a single value and no subtrees.
type Leaf[T any] struct {
	Value T
}

// Branch owns exactly two non-nil subtrees and no value of its own.
type Branch[T any] struct {
	Left  Tree[T]
	Right Tree[T]
}

func (Leaf[T]) isTree()   {}
func (Branch[T]) isTree() {}

func (l Leaf[T]) String() string {
	return fmt.Sprintf("(Leaf %v)", l.Value)
}

func (b Branch[T]) String() string {
	return fmt.Sprintf("(Branch %s %s)", b.Left, b.Right)
}

// NewLeaf wraps a value into a leaf.
func NewLeaf[T any](value T) Tree[T] {
	return Leaf[T]{Value: value}
}

// NewBranch joins two subtrees. Both subtrees have to be present; handing
// in a nil subtree is a programmer error.
func NewBranch[T any](left, right Tree[T]) Tree[T] {
	assertThat(left != nil && right != nil, "a branch owns exactly two subtrees, got nil")
	return Branch[T]{Left: left, Right: right}
}

// --- Fold ------------------------------------------------------------------

// Fold collapses a tree into a single value: every leaf is replaced by
// leaf(value), every branch by combine(folded-left, folded-right).
//
//     Fold(t, leaf, combine)  for  (Branch (Leaf a) (Leaf b))
//       ⟹  combine(leaf(a), leaf(b))
//
// The recursion depth equals the height of the tree. The result type R is
// free: it may be a scalar (see SizeViaFold) or a tree again (see
// MapViaFold).
func Fold[T, R any](t Tree[T], leaf func(T) R, combine func(R, R) R) R {
	switch n := t.(type) {
	case Leaf[T]:
		return leaf(n.Value)
	case Branch[T]:
		return combine(Fold(n.Left, leaf, combine), Fold(n.Right, leaf, combine))
	default:
		assertThat(false, "tree variant %T is not part of the closed sum", t)
		var zero R
		return zero
	}
}

// --- Derived operations ------------------------------------------------------

// Size counts the nodes of a tree, leaves and branches alike.
func Size[T any](t Tree[T]) int {
	switch n := t.(type) {
	case Leaf[T]:
		return 1
	case Branch[T]:
		return 1 + Size(n.Left) + Size(n.Right)
	}
	return 0
}

// SizeViaFold is Size, derived from Fold.
func SizeViaFold[T any](t Tree[T]) int {
	return Fold(t, func(T) int { return 1 }, func(l, r int) int { return 1 + l + r })
}

// Depth returns the length of the longest path from the root to a leaf.
// A lone leaf has depth 0.
func Depth[T any](t Tree[T]) int {
	switch n := t.(type) {
	case Leaf[T]:
		return 0
	case Branch[T]:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	}
	return 0
}

// DepthViaFold is Depth, derived from Fold.
func DepthViaFold[T any](t Tree[T]) int {
	return Fold(t, func(T) int { return 0 }, func(l, r int) int { return 1 + max(l, r) })
}

// Maximum returns the largest value held by any leaf of the tree.
func Maximum[T fp.Ordered](t Tree[T]) T {
	switch n := t.(type) {
	case Leaf[T]:
		return n.Value
	case Branch[T]:
		return max(Maximum(n.Left), Maximum(n.Right))
	}
	var zero T
	return zero
}

// MaximumViaFold is Maximum, derived from Fold.
func MaximumViaFold[T fp.Ordered](t Tree[T]) T {
	return Fold(t, fp.Identity[T], max[T])
}

// Map applies f to every leaf value, preserving the shape of the tree.
func Map[T, S any](t Tree[T], f func(T) S) Tree[S] {
	tracer().Debugf("mapping over %T", t)
	switch n := t.(type) {
	case Leaf[T]:
		return NewLeaf(f(n.Value))
	case Branch[T]:
		return NewBranch(Map(n.Left, f), Map(n.Right, f))
	}
	return nil
}

// MapViaFold is Map, derived from Fold: the folded value type is itself a
// tree, with NewBranch as the combinator.
func MapViaFold[T, S any](t Tree[T], f func(T) S) Tree[S] {
	return Fold(t, func(v T) Tree[S] { return NewLeaf(f(v)) }, NewBranch[S])
}

// --- Helpers ---------------------------------------------------------------

func max[T fp.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		panic(msg)
	}
}
