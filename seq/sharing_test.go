package seq

import (
	"testing"
)

// test internals: structural sharing of spines

func TestConsSharesTail(t *testing.T) {
	tl := Of(2, 3)
	s := Cons(1, tl)
	if s.node.tail != tl.node {
		t.Error("expected Cons to link the tail spine, copied it instead")
	}
}

func TestTailAndDropShareSpine(t *testing.T) {
	s := Of(1, 2, 3, 4)
	if s.Tail().node != s.node.tail {
		t.Error("expected Tail to share the spine, doesn't")
	}
	if s.Drop(2).node != s.node.tail.tail {
		t.Error("expected Drop(2) to share the remainder, doesn't")
	}
}

func TestAppendSharesSecondSpine(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4)
	ab := Append(a, b)
	suffix := ab.node.tail.tail // skip the rebuilt copies of a's two cells
	if suffix != b.node {
		t.Error("expected Append to share b's spine, copied it instead")
	}
	if ab.node == a.node {
		t.Error("expected Append to rebuild a's spine, shared it instead")
	}
}

func TestSetHeadSharesTail(t *testing.T) {
	s := Of(1, 2, 3)
	ss, err := s.SetHead(9)
	if err != nil {
		t.Fatalf("expected SetHead to succeed, got %v", err)
	}
	if ss.node.tail != s.node.tail {
		t.Error("expected SetHead to share the tail spine, doesn't")
	}
}
