package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestLineageCommand(t *testing.T) {
	out := execute(t, "lineage", "testdata/shapes.yaml")
	assert.Contains(t, out, "Circle")
	assert.Contains(t, out, "Circle -> Shape")
	assert.Contains(t, out, "Sprite -> Circle -> Shape -> Drawable")
}

func TestProbeCommand(t *testing.T) {
	out := execute(t, "probe", "testdata/shapes.yaml", "--entity", "Sprite", "--types", "Shape,Drawable")
	assert.Contains(t, out, "plain dispatch:     Shape")
	assert.Contains(t, out, "recursive dispatch: Shape -> Drawable")
}

func TestProbeCommand_NoMatch(t *testing.T) {
	out := execute(t, "probe", "testdata/shapes.yaml", "--entity", "Shape", "--types", "Drawable")
	assert.Contains(t, out, "incompatible visitor for Shape")
}
