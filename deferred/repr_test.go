// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package deferred

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReprOrderAndContent(t *testing.T) {
	w, err := newWave(4, 1.5)
	require.NoError(t, err)

	assert.Equal(t, "wave(N=4, L=1.5)", Repr(w))
	assert.Equal(t, Repr(w), fmt.Sprintf("%v", w), "fmt verbs use the canonical form")
}

func TestReprExcludesDerivedState(t *testing.T) {
	w, err := newWave(4, 1.0)
	require.NoError(t, err)

	before := Repr(w)
	w.X = make([]float64, 1<<20)

	assert.Equal(t, before, Repr(w), "transient attributes never change the display form")
}

func TestReprNestedObject(t *testing.T) {
	inner, err := newWave(2, 1.0)
	require.NoError(t, err)

	c := &chained{Inner: inner, Scale: 0.5}
	require.NoError(t, c.Track("Inner", &c.Inner))
	require.NoError(t, c.Track("Scale", &c.Scale))
	require.NoError(t, Build(c))

	assert.Equal(t, "chained(Inner=wave(N=2, L=1), Scale=0.5)", Repr(c))
}

func TestReprEqualNestedDistinctInner(t *testing.T) {
	build := func(t *testing.T, scale float64) *chained {
		t.Helper()

		inner, err := newWave(2, 1.0)
		require.NoError(t, err)

		c := &chained{Inner: inner, Scale: scale}
		require.NoError(t, c.Track("Inner", &c.Inner))
		require.NoError(t, c.Track("Scale", &c.Scale))
		require.NoError(t, Build(c))

		return c
	}

	a := build(t, 0.5)
	b := build(t, 0.5)

	require.Equal(t, Repr(a), Repr(b))
	assert.True(t, ReprEqual(a, b), "equal display forms must be representation-equal")

	require.NoError(t, b.Inner.Set("L", 2.0))
	assert.False(t, ReprEqual(a, b), "nested parameters still participate in equality")
}

func TestReprEqual(t *testing.T) {
	a, err := newWave(8, 1.0)
	require.NoError(t, err)

	b, err := newWave(8, 1.0)
	require.NoError(t, err)

	assert.True(t, ReprEqual(a, b))

	require.NoError(t, b.Set("L", 2.0))
	assert.False(t, ReprEqual(a, b))

	c := &chained{Inner: a, Scale: 1}
	require.NoError(t, c.Track("Inner", &c.Inner))
	require.NoError(t, c.Track("Scale", &c.Scale))
	require.NoError(t, Build(c))

	assert.False(t, ReprEqual(a, c), "different types are never representation-equal")
}
