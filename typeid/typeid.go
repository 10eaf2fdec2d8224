package typeid

import "reflect"

// Key identifies a single type (or a declared tag) for the lifetime of the
// process. Keys are comparable and cheap to copy; they are safe to use as map
// keys. The zero Key identifies nothing and matches no type.
type Key struct {
	rt   reflect.Type
	name string
	ro   bool
}

// Of returns the mutable key for T. Calling Of with the same T anywhere in
// the process yields the same key; distinct types never share a key.
func Of[T any]() Key {
	return Key{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// ReadOnlyOf returns the read-only twin key for T. It never compares equal
// to Of[T]().
func ReadOnlyOf[T any]() Key {
	return Key{rt: reflect.TypeOf((*T)(nil)).Elem(), ro: true}
}

// Named returns a mutable key for a declared tag that has no backing Go
// type. Two Named keys are equal exactly when their names are equal.
func Named(name string) Key {
	return Key{name: name}
}

// NamedReadOnly returns the read-only twin of Named(name).
func NamedReadOnly(name string) Key {
	return Key{name: name, ro: true}
}

// Name returns the display name for T, e.g. "testutil.A" or "int". It is
// intended for diagnostics only.
func Name[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Name returns the key's display name without the read-only marker.
func (k Key) Name() string {
	if k.rt != nil {
		return k.rt.String()
	}
	return k.name
}

// String renders the key for diagnostics, marking read-only twins.
func (k Key) String() string {
	if k.ro {
		return k.Name() + " (read-only)"
	}
	return k.Name()
}

// IsReadOnly reports whether k belongs to the read-only key space.
func (k Key) IsReadOnly() bool { return k.ro }

// ReadOnly returns the read-only twin of k. It is a no-op on keys that are
// already read-only.
func (k Key) ReadOnly() Key {
	k.ro = true
	return k
}

// Mutable returns the mutable twin of k.
func (k Key) Mutable() Key {
	k.ro = false
	return k
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.rt == nil && k.name == ""
}
