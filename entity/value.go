package entity

import (
	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/typeid"
	"github.com/hupe1980/visitmesh/visitor"
)

// View is an explicit converted projection of an inline value. Build views
// with ViewAs.
type View struct {
	key  typeid.Key
	view any
}

// ViewAs declares that the value can also be seen as the (already
// converted) U. The conversion is performed by the caller, once, at
// declaration time; the converted copy is materialized inside the entity so
// repeated casts return a stable address.
func ViewAs[U any](converted U) View {
	u := converted
	return View{key: typeid.Of[U](), view: &u}
}

// Value projects a plain value into the dispatch system without requiring
// it to join the entity hierarchy. The value is owned by the entity; its
// ancestor tables are authored explicitly via the declared views (the
// value's own type always comes first).
type Value[T any] struct {
	name  string
	data  *T
	lin   lineage.Lineage
	ro    lineage.Lineage
	views map[typeid.Key]any
}

// NewValue wraps v together with the given converted views. Only the
// declared types (plus T itself) can ever be matched or cast.
func NewValue[T any](v T, views ...View) *Value[T] {
	data := new(T)
	*data = v

	keys := make([]typeid.Key, 0, len(views)+1)
	table := make(map[typeid.Key]any, 2*(len(views)+1))

	bind := func(key typeid.Key, view any) {
		if _, ok := table[key]; ok {
			return
		}
		keys = append(keys, key)
		table[key] = view
		table[key.ReadOnly()] = view
	}

	bind(typeid.Of[T](), data)
	for _, w := range views {
		bind(w.key, w.view)
	}

	lin := lineage.Of(keys...)
	return &Value[T]{
		name:  typeid.Name[T](),
		data:  data,
		lin:   lin,
		ro:    lin.ReadOnly(),
		views: table,
	}
}

// Numeric covers the value types NewNumeric can project.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NewNumeric wraps a numeric value with the standard set of numeric views
// (byte, int, int32, int64, uint, float32, float64) so it can be cast to
// any of them.
func NewNumeric[T Numeric](v T) *Value[T] {
	return NewValue(v,
		ViewAs(byte(v)),
		ViewAs(int(v)),
		ViewAs(int32(v)),
		ViewAs(int64(v)),
		ViewAs(uint(v)),
		ViewAs(float32(v)),
		ViewAs(float64(v)),
	)
}

// Get returns the owned value.
func (v *Value[T]) Get() T { return *v.data }

// Self returns the address of the owned value.
func (v *Value[T]) Self() *T { return v.data }

// Lineage returns the mutable probe order.
func (v *Value[T]) Lineage() lineage.Lineage { return v.lin }

// ReadOnlyLineage returns the read-only probe order.
func (v *Value[T]) ReadOnlyLineage() lineage.Lineage { return v.ro }

// View returns the declared view for key, if any.
func (v *Value[T]) View(key typeid.Key) (any, bool) {
	view, ok := v.views[key]
	return view, ok
}

// TypeName returns the value type's display name.
func (v *Value[T]) TypeName() string { return v.name }

// Accept runs plain mutable dispatch against vis.
func (v *Value[T]) Accept(vis *visitor.Visitor) error {
	return visitor.Dispatch(v, vis)
}

// AcceptReadOnly runs plain read-only dispatch against vis.
func (v *Value[T]) AcceptReadOnly(vis *visitor.Visitor) error {
	return visitor.DispatchReadOnly(v, vis)
}

// AcceptRecursive runs recursive mutable dispatch against vis.
func (v *Value[T]) AcceptRecursive(vis *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursive(v, vis)
}

// AcceptRecursiveReadOnly runs recursive read-only dispatch against vis.
func (v *Value[T]) AcceptRecursiveReadOnly(vis *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursiveReadOnly(v, vis)
}
