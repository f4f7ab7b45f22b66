// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package deferred

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportContainsExactlyTrackedParams(t *testing.T) {
	w, err := newWave(64, 1.0)
	require.NoError(t, err)

	w.X = make([]float64, 1<<20) // large transient buffer

	params := Export(w)
	assert.Equal(t, map[string]any{"N": 64, "L": 1.0}, params)
}

func TestExportRestoreRoundTrip(t *testing.T) {
	orig, err := newWave(32, 2.5)
	require.NoError(t, err)

	restored := emptyWave(t)
	require.NoError(t, Restore(restored, Export(orig)))

	assert.True(t, restored.Initialized())
	assert.True(t, ReprEqual(orig, restored))
	assert.Equal(t, orig.X, restored.X, "derived state is recomputed, not copied")
}

func TestRestoreAfterJSONRoundTrip(t *testing.T) {
	orig, err := newWave(32, 2.5)
	require.NoError(t, err)

	data, err := json.Marshal(Export(orig))
	require.NoError(t, err)

	var params map[string]any
	require.NoError(t, json.Unmarshal(data, &params))

	// JSON widens every number to float64; Restore must land them back in
	// the declared field types.
	restored := emptyWave(t)
	require.NoError(t, Restore(restored, params))

	assert.Equal(t, 32, restored.N)
	assert.True(t, ReprEqual(orig, restored))
}

func TestRestoreMissingParamFailsInInit(t *testing.T) {
	restored := emptyWave(t)

	err := Restore(restored, map[string]any{"L": 1.0})
	require.ErrorIs(t, err, errBadWave, "the absence surfaces from Init, not from a separate check")
	assert.False(t, restored.Initialized())
}

func TestRestoreIgnoresUnknownKeys(t *testing.T) {
	restored := emptyWave(t)

	err := Restore(restored, map[string]any{"N": 8, "L": 1.0, "comment": "old format"})
	require.NoError(t, err)
	assert.Equal(t, 8, restored.N)
}

func TestRestoreDecodeFailure(t *testing.T) {
	restored := emptyWave(t)

	err := Restore(restored, map[string]any{"N": []string{"nope"}, "L": 1.0})
	assert.ErrorIs(t, err, ErrRestoreDecode)
}
