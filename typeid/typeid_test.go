package typeid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/visitmesh/typeid"
)

type alpha struct{ _ int }

type beta struct{ _ int }

func TestOf_StableAndDistinct(t *testing.T) {
	assert.Equal(t, typeid.Of[alpha](), typeid.Of[alpha]())
	assert.NotEqual(t, typeid.Of[alpha](), typeid.Of[beta]())
	assert.NotEqual(t, typeid.Of[int](), typeid.Of[int64]())
}

func TestReadOnlyTwins(t *testing.T) {
	mut := typeid.Of[alpha]()
	ro := typeid.ReadOnlyOf[alpha]()

	assert.NotEqual(t, mut, ro)
	assert.Equal(t, ro, mut.ReadOnly())
	assert.Equal(t, mut, ro.Mutable())
	assert.True(t, ro.IsReadOnly())
	assert.False(t, mut.IsReadOnly())
	// Twins share the display name.
	assert.Equal(t, mut.Name(), ro.Name())
}

func TestNamedKeys(t *testing.T) {
	a := typeid.Named("A")
	assert.Equal(t, a, typeid.Named("A"))
	assert.NotEqual(t, a, typeid.Named("B"))
	assert.Equal(t, typeid.NamedReadOnly("A"), a.ReadOnly())
	assert.Equal(t, "A", a.Name())
	// Name-based and type-based keys never alias, even for matching names.
	assert.NotEqual(t, typeid.Named("int"), typeid.Of[int]())
}

func TestNamesForDiagnostics(t *testing.T) {
	assert.Equal(t, "int", typeid.Name[int]())
	assert.Equal(t, "typeid_test.alpha", typeid.Name[alpha]())
	assert.Equal(t, "typeid_test.alpha (read-only)", typeid.ReadOnlyOf[alpha]().String())
}

func TestZeroKey(t *testing.T) {
	var k typeid.Key
	assert.True(t, k.IsZero())
	assert.False(t, typeid.Of[alpha]().IsZero())
	assert.False(t, typeid.Named("A").IsZero())
}
