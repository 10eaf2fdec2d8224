package visitor_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/hupe1980/visitmesh/internal/testutil"
	"github.com/hupe1980/visitmesh/visitor"
)

// handlerByTag builds a plain mutable handler for one fixture type that
// records its tag into out.
func handlerByTag(tag byte, out *byte) visitor.Handler {
	switch tag {
	case 'A':
		return visitor.For[testutil.A](func(*testutil.A) error { *out = 'A'; return nil })
	case 'B':
		return visitor.For[testutil.B](func(*testutil.B) error { *out = 'B'; return nil })
	case 'C':
		return visitor.For[testutil.C](func(*testutil.C) error { *out = 'C'; return nil })
	case 'D':
		return visitor.For[testutil.D](func(*testutil.D) error { *out = 'D'; return nil })
	case 'E':
		return visitor.For[testutil.E](func(*testutil.E) error { *out = 'E'; return nil })
	case 'F':
		return visitor.For[testutil.F](func(*testutil.F) error { *out = 'F'; return nil })
	default:
		return visitor.For[testutil.X](func(*testutil.X) error { *out = 'X'; return nil })
	}
}

// Plain dispatch must pick the first ancestor-table entry with a declared
// capability; the order in which the visitor declares its capabilities must
// never matter.
func TestProperty_HandlerOrderIrrelevant(t *testing.T) {
	entities := map[string]struct {
		target    visitor.Visitable
		ancestors string
	}{
		"A": {testutil.KindA.New(), "A"},
		"C": {testutil.KindC.New(), "CA"},
		"D": {testutil.KindD.New(), "DAB"},
		"E": {testutil.KindE.New(), "EDABX"},
		"F": {testutil.KindF.New(), "FEDBAX"},
	}
	names := []string{"A", "C", "D", "E", "F"}

	rapid.Check(t, func(rt *rapid.T) {
		ent := entities[rapid.SampledFrom(names).Draw(rt, "entity")]

		tags := rapid.SliceOfNDistinct(
			rapid.SampledFrom([]byte("ABCDEFX")), 1, 7,
			func(b byte) byte { return b },
		).Draw(rt, "tags")

		var got byte
		handlers := make([]visitor.Handler, len(tags))
		for i, tag := range tags {
			handlers[i] = handlerByTag(tag, &got)
		}

		// The expected winner depends only on the entity's own table.
		var want byte
		for i := 0; i < len(ent.ancestors); i++ {
			for _, tag := range tags {
				if ent.ancestors[i] == tag {
					want = tag
					break
				}
			}
			if want != 0 {
				break
			}
		}

		err := visitor.Dispatch(ent.target, visitor.New(handlers...))
		if want == 0 {
			if !visitor.IsIncompatibleVisitor(err) {
				rt.Fatalf("expected IncompatibleVisitorError, got %v", err)
			}
			return
		}
		if err != nil {
			rt.Fatalf("dispatch failed: %v", err)
		}
		if got != want {
			rt.Fatalf("dispatch chose %q, want %q (handlers %q)", got, want, tags)
		}
	})
}
