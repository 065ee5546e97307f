/*
Package seq implements an immutable persistent singly-linked sequence.

A sequence is either empty or a head element linked to a tail sequence.
Every “modification” (consing, mapping, dropping) creates a new incarnation
of the sequence, leaving the original unmodified. Under the hood most of
the spine is shared between original and copy: consing onto a sequence or
appending a sequence never touches the suffix chain, it is reused as-is.

Immutable sequences are inherently concurrency-safe.

All traversals are expressed as instances of two fold primitives:
FoldRight, which recurses from the tail inward, and FoldLeft, which
accumulates front-to-back in constant stack space. Derived operations
(Map, Filter, Append, Reverse, …) are thin instantiations of these folds.

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.seq'.
func tracer() tracing.Trace {
	return tracing.Select("fp.seq")
}
