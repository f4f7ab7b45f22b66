// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package interrupt

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCompletesWithoutInterrupt(t *testing.T) {
	got := Map(func(x int) int { return x * x }, []int{1, 2, 3}, quiet())

	assert.Equal(t, []int{1, 4, 9}, got)
	assert.Equal(t, 0, Depth(), "the implicit scope must be gone afterwards")
}

func TestMapShortCircuitsOnInterrupt(t *testing.T) {
	double := func(x int) int {
		if x == 2 {
			Trigger(os.Interrupt)
		}

		return 2 * x
	}

	got := Map(double, []int{1, 2, 3, 4, 5}, quiet())

	assert.Equal(t, []int{2, 4}, got, "elements after the interrupt stay unprocessed")
}

func TestMapEmptyInput(t *testing.T) {
	assert.Empty(t, Map(func(x int) int { return x }, nil, quiet()))
}

func TestExitQuietlyLogsOutOfOrderExit(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	outer := Enter(quiet())
	inner := Enter(WithLogger(logger))

	exitQuietly(outer)

	assert.Contains(t, buf.String(), "interception may leak")
	assert.Contains(t, buf.String(), ErrOutOfOrderExit.Error())
	assert.Equal(t, 2, Depth(), "a rejected exit leaves the stack for the caller to unwind")

	require.NoError(t, inner.Exit())
	require.NoError(t, outer.Exit())
}

func TestTryMapAggregatesErrors(t *testing.T) {
	errOdd := errors.New("odd input")

	got, err := TryMap(func(x int) (int, error) {
		if x%2 == 1 {
			return 0, errOdd
		}

		return x / 2, nil
	}, []int{1, 2, 3, 4}, quiet())

	assert.Equal(t, []int{1, 2}, got)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, err, errOdd)
	assert.Contains(t, err.Error(), "item 0")
}

func TestTryMapShortCircuitsOnInterrupt(t *testing.T) {
	var processed []string

	got, err := TryMap(func(name string) (string, error) {
		processed = append(processed, name)
		if len(processed) == 2 {
			Trigger(os.Interrupt)
		}

		return fmt.Sprintf("run-%s", name), nil
	}, []string{"a", "b", "c"}, quiet())

	require.NoError(t, err)
	assert.Equal(t, []string{"run-a", "run-b"}, got)
	assert.Equal(t, []string{"a", "b"}, processed)
}
