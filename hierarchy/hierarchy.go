package hierarchy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/typeid"
)

// Decl is one entity-kind declaration in a document.
type Decl struct {
	// Name is the unique tag of the entity kind.
	Name string `yaml:"name"`
	// Kind is one of root, derived, join or shared_join.
	Kind string `yaml:"kind"`
	// Parent names the single parent of a derived kind.
	Parent string `yaml:"parent,omitempty"`
	// Parents names the parents of a join, in declaration order.
	Parents []string `yaml:"parents,omitempty"`
}

// Document is the YAML root of a hierarchy file.
type Document struct {
	Entities []Decl `yaml:"entities"`
}

// Table holds the resolved ancestor table per declared entity kind. Tables
// are immutable after Load and safe for concurrent reads.
type Table struct {
	order    []string
	lineages map[string]lineage.Lineage
}

// Load reads a YAML hierarchy document and resolves every declaration.
func Load(r io.Reader) (*Table, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("hierarchy: decode document: %w", err)
	}
	return Build(doc)
}

// LoadFile is Load over a file path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Build resolves an already decoded document into a Table. Forward
// references are allowed; duplicates, unknown parents, unknown kinds and
// cycles are errors.
func Build(doc Document) (*Table, error) {
	decls := make(map[string]Decl, len(doc.Entities))
	order := make([]string, 0, len(doc.Entities))
	for _, d := range doc.Entities {
		if d.Name == "" {
			return nil, fmt.Errorf("hierarchy: declaration without a name")
		}
		if _, ok := decls[d.Name]; ok {
			return nil, fmt.Errorf("hierarchy: duplicate entity %q", d.Name)
		}
		decls[d.Name] = d
		order = append(order, d.Name)
	}

	t := &Table{order: order, lineages: make(map[string]lineage.Lineage, len(order))}
	resolving := make(map[string]bool, len(order))
	for _, name := range order {
		if _, err := t.resolve(name, decls, resolving); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) resolve(name string, decls map[string]Decl, resolving map[string]bool) (lineage.Lineage, error) {
	if l, ok := t.lineages[name]; ok {
		return l, nil
	}
	if resolving[name] {
		return lineage.Lineage{}, fmt.Errorf("hierarchy: entity %q: declaration cycle", name)
	}
	resolving[name] = true
	defer delete(resolving, name)

	d := decls[name]
	parents := func(names []string) ([]lineage.Lineage, error) {
		out := make([]lineage.Lineage, len(names))
		for i, p := range names {
			if _, ok := decls[p]; !ok {
				return nil, fmt.Errorf("hierarchy: entity %q: unknown parent %q", name, p)
			}
			l, err := t.resolve(p, decls, resolving)
			if err != nil {
				return nil, err
			}
			out[i] = l
		}
		return out, nil
	}

	var result lineage.Lineage
	switch d.Kind {
	case "root":
		if d.Parent != "" || len(d.Parents) > 0 {
			return lineage.Lineage{}, fmt.Errorf("hierarchy: entity %q: root kinds have no parents", name)
		}
		result = lineage.Root(typeid.Named(name))
	case "derived":
		if d.Parent == "" {
			return lineage.Lineage{}, fmt.Errorf("hierarchy: entity %q: derived kinds need a parent", name)
		}
		ps, err := parents([]string{d.Parent})
		if err != nil {
			return lineage.Lineage{}, err
		}
		result = ps[0].Push(typeid.Named(name))
	case "join", "shared_join":
		if len(d.Parents) == 0 {
			return lineage.Lineage{}, fmt.Errorf("hierarchy: entity %q: joins need at least one parent", name)
		}
		ps, err := parents(d.Parents)
		if err != nil {
			return lineage.Lineage{}, err
		}
		result = lineage.Merge(ps...).Push(typeid.Named(name))
	default:
		return lineage.Lineage{}, fmt.Errorf("hierarchy: entity %q: unknown kind %q", name, d.Kind)
	}

	t.lineages[name] = result
	return result, nil
}

// Names returns the declared entity names in document order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Lineage returns the resolved ancestor table for name.
func (t *Table) Lineage(name string) (lineage.Lineage, bool) {
	l, ok := t.lineages[name]
	return l, ok
}

// Probe simulates plain dispatch: it returns the first ancestor of entity
// that appears in handled, or ok=false when nothing matches.
func (t *Table) Probe(entity string, handled ...string) (match string, ok bool, err error) {
	l, found := t.lineages[entity]
	if !found {
		return "", false, fmt.Errorf("hierarchy: unknown entity %q", entity)
	}
	set := make(map[typeid.Key]string, len(handled))
	for _, h := range handled {
		set[typeid.Named(h)] = h
	}
	for _, k := range l.Keys() {
		if name, hit := set[k]; hit {
			return name, true, nil
		}
	}
	return "", false, nil
}

// VisitOrder simulates a never-stopping recursive dispatch: it returns every
// ancestor of entity that appears in handled, in probe order.
func (t *Table) VisitOrder(entity string, handled ...string) ([]string, error) {
	l, found := t.lineages[entity]
	if !found {
		return nil, fmt.Errorf("hierarchy: unknown entity %q", entity)
	}
	set := make(map[typeid.Key]string, len(handled))
	for _, h := range handled {
		set[typeid.Named(h)] = h
	}
	var out []string
	for _, k := range l.Keys() {
		if name, hit := set[k]; hit {
			out = append(out, name)
		}
	}
	return out, nil
}
