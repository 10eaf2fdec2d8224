package testutil

import (
	"github.com/hupe1980/visitmesh/entity"
	"github.com/hupe1980/visitmesh/visitor"
)

// The fixture family. Each type carries a tag so handlers can record which
// view they were given.
type (
	// A is a root kind.
	A struct{ Tag byte }
	// B is a root kind.
	B struct{ Tag byte }
	// X is a root kind with no tag, handled by almost no fixture visitor.
	X struct{}
	// C extends A.
	C struct{ Tag byte }
	// D is a shared join of A and B.
	D struct{ Tag byte }
	// E is a shared join of D, A and X (a diamond over A).
	E struct{ Tag byte }
	// F is a shared join of B and E (a nested diamond over A and B).
	F struct{ Tag byte }
	// BX and XB are plain joins of B and X in both declaration orders.
	BX struct{}
	XB struct{}
)

// Declared fixture kinds. Ancestor tables:
//
//	A=[A] B=[B] X=[X] C=[C,A] D=[D,A,B] E=[E,D,A,B,X] F=[F,E,D,B,A,X]
//	BX=[BX,B,X] XB=[XB,X,B]
var (
	KindA  = entity.Root[A]().Init(func(a *A) { a.Tag = 'A' })
	KindB  = entity.Root[B]().Init(func(b *B) { b.Tag = 'B' })
	KindX  = entity.Root[X]()
	KindC  = entity.Derive[C](KindA).Init(func(c *C) { c.Tag = 'C' })
	KindD  = entity.SharedJoin[D](KindA, KindB).Init(func(d *D) { d.Tag = 'D' })
	KindE  = entity.SharedJoin[E](KindD, KindA, KindX).Init(func(e *E) { e.Tag = 'E' })
	KindF  = entity.SharedJoin[F](KindB, KindE).Init(func(f *F) { f.Tag = 'F' })
	KindBX = entity.Join[BX](KindB, KindX)
	KindXB = entity.Join[XB](KindX, KindB)
)

// NewABCVisitor builds a read-only plain visitor handling {A, B, C} that
// records the matched tag into out.
func NewABCVisitor(out *byte) *visitor.Visitor {
	return visitor.New(
		visitor.ForReadOnly[A](func(a *A) error { *out = a.Tag; return nil }),
		visitor.ForReadOnly[B](func(b *B) error { *out = b.Tag; return nil }),
		visitor.ForReadOnly[C](func(c *C) error { *out = c.Tag; return nil }),
	)
}

// NewABXVisitor builds a mutable plain visitor handling {A, B, X} that
// records the matched tag into out.
func NewABXVisitor(out *byte) *visitor.Visitor {
	return visitor.New(
		visitor.For[A](func(a *A) error { *out = a.Tag; return nil }),
		visitor.For[B](func(b *B) error { *out = b.Tag; return nil }),
		visitor.For[X](func(*X) error { *out = 'X'; return nil }),
	)
}

// NewTagRecorder builds a mutable recursive visitor handling {A..F} that
// appends every visited tag to out. With stopAtFirst it ends the scan after
// the first match.
func NewTagRecorder(out *[]byte, stopAtFirst bool) *visitor.RecursiveVisitor {
	record := func(tag byte) (bool, error) {
		*out = append(*out, tag)
		return stopAtFirst, nil
	}
	return visitor.NewRecursive(
		visitor.Recurse[A](func(a *A) (bool, error) { return record(a.Tag) }),
		visitor.Recurse[B](func(b *B) (bool, error) { return record(b.Tag) }),
		visitor.Recurse[C](func(c *C) (bool, error) { return record(c.Tag) }),
		visitor.Recurse[D](func(d *D) (bool, error) { return record(d.Tag) }),
		visitor.Recurse[E](func(e *E) (bool, error) { return record(e.Tag) }),
		visitor.Recurse[F](func(f *F) (bool, error) { return record(f.Tag) }),
	)
}
