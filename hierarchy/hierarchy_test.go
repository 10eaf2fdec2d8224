package hierarchy_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/visitmesh/hierarchy"
)

const fixtureDoc = `
entities:
  - name: A
    kind: root
  - name: B
    kind: root
  - name: X
    kind: root
  - name: C
    kind: derived
    parent: A
  - name: D
    kind: shared_join
    parents: [A, B]
  - name: E
    kind: shared_join
    parents: [D, A, X]
  - name: F
    kind: shared_join
    parents: [B, E]
`

func TestLoad_ResolvesLineages(t *testing.T) {
	table, err := hierarchy.Load(strings.NewReader(fixtureDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "X", "C", "D", "E", "F"}, table.Names())

	want := map[string][]string{
		"A": {"A"},
		"C": {"C", "A"},
		"D": {"D", "A", "B"},
		"E": {"E", "D", "A", "B", "X"},
		"F": {"F", "E", "D", "B", "A", "X"},
	}
	for name, order := range want {
		l, ok := table.Lineage(name)
		require.Truef(t, ok, "missing lineage for %s", name)
		if diff := cmp.Diff(order, l.Names()); diff != "" {
			t.Errorf("lineage of %s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoad_ForwardReferences(t *testing.T) {
	doc := `
entities:
  - name: C
    kind: derived
    parent: A
  - name: A
    kind: root
`
	table, err := hierarchy.Load(strings.NewReader(doc))
	require.NoError(t, err)
	l, ok := table.Lineage("C")
	require.True(t, ok)
	assert.Equal(t, []string{"C", "A"}, l.Names())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "unknown parent",
			doc:  "entities:\n  - name: C\n    kind: derived\n    parent: A\n",
			msg:  `unknown parent "A"`,
		},
		{
			name: "duplicate",
			doc:  "entities:\n  - name: A\n    kind: root\n  - name: A\n    kind: root\n",
			msg:  `duplicate entity "A"`,
		},
		{
			name: "cycle",
			doc:  "entities:\n  - name: A\n    kind: derived\n    parent: B\n  - name: B\n    kind: derived\n    parent: A\n",
			msg:  "declaration cycle",
		},
		{
			name: "unknown kind",
			doc:  "entities:\n  - name: A\n    kind: virtual\n",
			msg:  `unknown kind "virtual"`,
		},
		{
			name: "root with parents",
			doc:  "entities:\n  - name: A\n    kind: root\n    parents: [B]\n",
			msg:  "root kinds have no parents",
		},
		{
			name: "derived without parent",
			doc:  "entities:\n  - name: A\n    kind: derived\n",
			msg:  "need a parent",
		},
		{
			name: "join without parents",
			doc:  "entities:\n  - name: A\n    kind: join\n",
			msg:  "at least one parent",
		},
		{
			name: "missing name",
			doc:  "entities:\n  - kind: root\n",
			msg:  "without a name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hierarchy.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestProbe(t *testing.T) {
	table, err := hierarchy.Load(strings.NewReader(fixtureDoc))
	require.NoError(t, err)

	match, ok, err := table.Probe("F", "A", "B", "C")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B", match)

	_, ok, err = table.Probe("X", "A", "B", "C")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = table.Probe("Z", "A")
	assert.Error(t, err)
}

func TestVisitOrder(t *testing.T) {
	table, err := hierarchy.Load(strings.NewReader(fixtureDoc))
	require.NoError(t, err)

	order, err := table.VisitOrder("F", "A", "B", "C", "D", "E", "F")
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "E", "D", "B", "A"}, order)

	order, err = table.VisitOrder("X", "A", "B")
	require.NoError(t, err)
	assert.Empty(t, order)
}
