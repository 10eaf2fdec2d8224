package lineage

import "github.com/hupe1980/visitmesh/typeid"

// Entry is a single ancestor table slot: a type key plus its derivation
// depth. Depth 0 is a root; larger depths are more derived.
type Entry struct {
	Key   typeid.Key
	Depth int
}

// Lineage is an immutable ordered ancestor table. The zero value is a valid
// empty lineage. All builder methods return fresh values and never mutate
// their receiver.
type Lineage struct {
	entries []Entry
}

// Root returns the one-entry lineage of a root kind.
func Root(key typeid.Key) Lineage {
	return Lineage{entries: []Entry{{Key: key, Depth: 0}}}
}

// Of returns an explicit lineage for the given keys in the given order.
// It is meant for facade and inline-value entities whose ancestor set is
// authored directly rather than derived; the first key is treated as the
// most derived. Duplicate keys keep their first position.
func Of(keys ...typeid.Key) Lineage {
	out := Lineage{}
	for i, k := range keys {
		out.entries = insert(out.entries, Entry{Key: k, Depth: len(keys) - 1 - i})
	}
	return out
}

// Push returns a new lineage with key prepended as the new self, one depth
// level above everything already present.
func (l Lineage) Push(key typeid.Key) Lineage {
	out := make([]Entry, 0, len(l.entries)+1)
	out = append(out, Entry{Key: key, Depth: l.maxDepth() + 1})
	out = append(out, l.entries...)
	return Lineage{entries: out}
}

// Merge combines parent lineages in declaration order into one table.
// Entries are inserted one parent at a time; see the package documentation
// for the depth rules that settle diamonds and nested joins.
func Merge(parts ...Lineage) Lineage {
	var out []Entry
	for _, p := range parts {
		for _, e := range p.entries {
			out = insert(out, e)
		}
	}
	return Lineage{entries: out}
}

// insert places e into entries, keeping deeper entries first and preserving
// first-arrival order among equal depths. A duplicate key at the same or a
// greater depth is a no-op; a shallower duplicate is lifted.
func insert(entries []Entry, e Entry) []Entry {
	for i, x := range entries {
		if x.Key == e.Key {
			if x.Depth >= e.Depth {
				return entries
			}
			entries = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	pos := len(entries)
	for i, x := range entries {
		if x.Depth < e.Depth {
			pos = i
			break
		}
	}
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries[:pos]...)
	out = append(out, e)
	out = append(out, entries[pos:]...)
	return out
}

// ReadOnly returns the lineage with every key replaced by its read-only
// twin. Depths and order are preserved.
func (l Lineage) ReadOnly() Lineage {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = Entry{Key: e.Key.ReadOnly(), Depth: e.Depth}
	}
	return Lineage{entries: out}
}

// Keys returns the probe order as a fresh slice.
func (l Lineage) Keys() []typeid.Key {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]typeid.Key, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Key
	}
	return out
}

// Entries returns a copy of the underlying table.
func (l Lineage) Entries() []Entry {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Names returns the display names of the probe order, handy in diagnostics
// and table-driven tests.
func (l Lineage) Names() []string {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Key.Name()
	}
	return out
}

// Len returns the number of ancestors, self included.
func (l Lineage) Len() int { return len(l.entries) }

// Contains reports whether key is part of the table.
func (l Lineage) Contains(key typeid.Key) bool {
	for _, e := range l.entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

func (l Lineage) maxDepth() int {
	max := -1
	for _, e := range l.entries {
		if e.Depth > max {
			max = e.Depth
		}
	}
	return max
}
