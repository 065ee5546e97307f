/*
Package tree implements an immutable binary tree with a generalized fold.

A tree is either a leaf holding a value, or a branch owning two subtrees;
there is no empty tree. The single primitive is Fold, which replaces every
leaf by a transform of its value and every branch by a combination of its
folded subtrees. Size, Depth, Maximum and Map all are instances of Fold,
and the package keeps their direct-recursion twins around so the
derivations can be checked against one another.

Trees are immutable after construction; Map builds a fresh tree and leaves
its input untouched.

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.tree")
}
