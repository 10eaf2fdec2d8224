package entity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/visitmesh/entity"
	"github.com/hupe1980/visitmesh/internal/testutil"
	"github.com/hupe1980/visitmesh/visitor"
)

func TestKindLineages(t *testing.T) {
	want := map[string][]string{
		"A": {"testutil.A"},
		"C": {"testutil.C", "testutil.A"},
		"D": {"testutil.D", "testutil.A", "testutil.B"},
		"E": {"testutil.E", "testutil.D", "testutil.A", "testutil.B", "testutil.X"},
		"F": {"testutil.F", "testutil.E", "testutil.D", "testutil.B", "testutil.A", "testutil.X"},
	}
	got := map[string][]string{
		"A": testutil.KindA.Lineage().Names(),
		"C": testutil.KindC.Lineage().Names(),
		"D": testutil.KindD.Lineage().Names(),
		"E": testutil.KindE.Lineage().Names(),
		"F": testutil.KindF.Lineage().Names(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kind lineages mismatch (-want +got):\n%s", diff)
	}
}

func TestInstance_InitAndSelf(t *testing.T) {
	c := testutil.KindC.New()
	assert.Equal(t, byte('C'), c.Self().Tag)
	assert.Equal(t, "testutil.C", c.TypeName())

	// The A sub-object got its own initializer.
	a := visitor.Cast[testutil.A](c)
	require.NotNil(t, a)
	assert.Equal(t, byte('A'), a.Tag)
}

// Local kinds for join identity tests: two parents that both derive from
// the same root.
type (
	base  struct{ n int }
	left  struct{}
	right struct{}
	plain struct{}
	merge struct{}
)

func TestSharedJoin_CollapsesDiamond(t *testing.T) {
	inits := 0
	kindBase := entity.Root[base]().Init(func(b *base) { inits++ })
	kindLeft := entity.SharedJoin[left](kindBase)
	kindRight := entity.SharedJoin[right](kindBase)
	kindMerge := entity.SharedJoin[merge](kindLeft, kindRight)

	inits = 0
	m := kindMerge.New()
	assert.Equal(t, 1, inits, "diamond base must be allocated once")

	assert.Equal(t,
		[]string{"entity_test.merge", "entity_test.left", "entity_test.right", "entity_test.base"},
		m.Lineage().Names())
}

func TestPlainJoin_DuplicatesStorage(t *testing.T) {
	inits := 0
	kindBase := entity.Root[base]().Init(func(b *base) { inits++ })
	kindLeft := entity.Join[left](kindBase)
	kindRight := entity.Join[right](kindBase)
	kindPlain := entity.Join[plain](kindLeft, kindRight)

	inits = 0
	p := kindPlain.New()
	assert.Equal(t, 2, inits, "plain join keeps one base per parent")

	// Dispatch order is unaffected by the duplication: base appears once,
	// backed by the first parent's copy.
	assert.Equal(t,
		[]string{"entity_test.plain", "entity_test.left", "entity_test.right", "entity_test.base"},
		p.Lineage().Names())

	b := visitor.Cast[base](p)
	require.NotNil(t, b)
	b.n = 7
	assert.Equal(t, 7, visitor.Cast[base](p).n)
}

func TestInstance_ViewIdentityIsStable(t *testing.T) {
	f := testutil.KindF.New()
	first := visitor.Cast[testutil.A](f)
	second := visitor.Cast[testutil.A](f)
	assert.Same(t, first, second)

	// Distinct instances never share state.
	other := testutil.KindF.New()
	assert.NotSame(t, first, visitor.Cast[testutil.A](other))
}

func TestInstance_AcceptEntryPoints(t *testing.T) {
	d := testutil.KindD.New()

	var roTag byte
	require.NoError(t, d.AcceptReadOnly(testutil.NewABCVisitor(&roTag)))
	assert.Equal(t, byte('A'), roTag)

	var mutTag byte
	require.NoError(t, d.Accept(testutil.NewABXVisitor(&mutTag)))
	assert.Equal(t, byte('A'), mutTag)

	var tags []byte
	require.NoError(t, d.AcceptRecursive(testutil.NewTagRecorder(&tags, false)))
	assert.Equal(t, "DAB", string(tags))

	tags = tags[:0]
	require.NoError(t, d.AcceptRecursiveReadOnly(testutil.NewTagRecorder(&tags, false)))
	// The recorder is mutable-only; the read-only scan matches nothing.
	assert.Empty(t, tags)
}

func TestKind_Immutability(t *testing.T) {
	before := testutil.KindD.Lineage().Names()
	_ = testutil.KindD.New()
	_ = entity.SharedJoin[merge](testutil.KindD, testutil.KindX)
	assert.Equal(t, before, testutil.KindD.Lineage().Names())
}
