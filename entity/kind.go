package entity

import (
	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/typeid"
)

// AnyKind is the type-erased face of a declared entity kind. It is what
// Derive, Join and SharedJoin accept as parents.
type AnyKind interface {
	// Lineage returns the kind's mutable ancestor table.
	Lineage() lineage.Lineage
	// ReadOnlyLineage returns the kind's read-only ancestor table.
	ReadOnlyLineage() lineage.Lineage
	// Name returns the kind's display name.
	Name() string

	// instantiate allocates this kind's sub-objects into b and returns the
	// pointer to its own state. shared controls whether the allocation
	// participates in diamond collapsing.
	instantiate(b *builder, shared bool) any
}

// Kind describes a declared entity kind T: its ancestor tables plus the
// recipe for building instances. Kinds are immutable after declaration and
// safe to share.
type Kind[T any] struct {
	name          string
	lin           lineage.Lineage
	ro            lineage.Lineage
	parents       []AnyKind
	sharedParents bool
	init          func(*T)
}

// Root declares T as a root kind: its ancestor table is just itself.
func Root[T any]() *Kind[T] {
	lin := lineage.Root(typeid.Of[T]())
	return &Kind[T]{name: typeid.Name[T](), lin: lin, ro: lin.ReadOnly()}
}

// Derive declares T as a single-parent kind extending parent. T's ancestor
// table is the parent's table with T prepended.
func Derive[T any](parent AnyKind) *Kind[T] {
	lin := parent.Lineage().Push(typeid.Of[T]())
	return &Kind[T]{
		name:    typeid.Name[T](),
		lin:     lin,
		ro:      lin.ReadOnly(),
		parents: []AnyKind{parent},
	}
}

// Join declares T as a plain join of parents. Each parent keeps its own
// sub-objects in an instance, so an ancestor reachable through several
// parents is stored more than once; its view is backed by the first parent
// that reaches it in declaration order.
func Join[T any](parents ...AnyKind) *Kind[T] {
	return join[T](parents, false)
}

// SharedJoin declares T as a join whose diamond ancestors collapse: a type
// reachable through several parents is backed by one shared sub-object.
// The ancestor table is identical to Join's.
func SharedJoin[T any](parents ...AnyKind) *Kind[T] {
	return join[T](parents, true)
}

func join[T any](parents []AnyKind, shared bool) *Kind[T] {
	parts := make([]lineage.Lineage, len(parents))
	for i, p := range parents {
		parts[i] = p.Lineage()
	}
	lin := lineage.Merge(parts...).Push(typeid.Of[T]())
	return &Kind[T]{
		name:          typeid.Name[T](),
		lin:           lin,
		ro:            lin.ReadOnly(),
		parents:       parents,
		sharedParents: shared,
	}
}

// Init installs a state initializer that runs for every freshly allocated T
// sub-object. It returns the kind to allow chained declarations.
func (k *Kind[T]) Init(fn func(*T)) *Kind[T] {
	k.init = fn
	return k
}

// Lineage returns the kind's mutable ancestor table.
func (k *Kind[T]) Lineage() lineage.Lineage { return k.lin }

// ReadOnlyLineage returns the kind's read-only ancestor table.
func (k *Kind[T]) ReadOnlyLineage() lineage.Lineage { return k.ro }

// Name returns the kind's display name.
func (k *Kind[T]) Name() string { return k.name }

// New assembles an instance of the kind: state for every reachable
// ancestor, a view table keyed by type, and the kind's ancestor tables as
// probe order.
func (k *Kind[T]) New() *Instance[T] {
	b := &builder{
		views:  make(map[typeid.Key]any),
		shared: make(map[typeid.Key]any),
	}
	self := k.instantiate(b, false).(*T)
	return &Instance[T]{kind: k, self: self, views: b.views}
}

func (k *Kind[T]) instantiate(b *builder, shared bool) any {
	selfKey := typeid.Of[T]()
	if shared {
		if existing, ok := b.shared[selfKey]; ok {
			b.bind(selfKey, existing)
			return existing
		}
	}
	state := new(T)
	if k.init != nil {
		k.init(state)
	}
	if shared {
		b.shared[selfKey] = state
	}
	b.bind(selfKey, state)
	for _, parent := range k.parents {
		parent.instantiate(b, k.sharedParents)
	}
	return state
}

// builder accumulates the view table for one instance under construction.
// shared memoizes diamond-collapsed sub-objects across the whole instance.
type builder struct {
	views  map[typeid.Key]any
	shared map[typeid.Key]any
}

// bind registers view under key and its read-only twin. The first binding
// for a key wins, matching the ancestor table's first-occurrence rule.
func (b *builder) bind(key typeid.Key, view any) {
	if _, ok := b.views[key]; !ok {
		b.views[key] = view
	}
	roKey := key.ReadOnly()
	if _, ok := b.views[roKey]; !ok {
		b.views[roKey] = view
	}
}
