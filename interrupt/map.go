// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package interrupt

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Map applies fn to each element of items in order inside an implicit scope.
// Once an interrupt is pending no further elements are processed; the results
// computed so far are returned.
func Map[T, R any](fn func(T) R, items []T, opts ...Option) []R {
	s := Enter(opts...)
	defer exitQuietly(s)

	out := make([]R, 0, len(items))

	for _, item := range items {
		if s.Triggered() {
			break
		}

		out = append(out, fn(item))
	}

	return out
}

// TryMap is [Map] for fallible functions. Elements that fail are skipped and
// their errors aggregated; an interrupt still stops the iteration between
// elements. The partial results are returned alongside the combined error,
// if any.
func TryMap[T, R any](fn func(T) (R, error), items []T, opts ...Option) ([]R, error) {
	s := Enter(opts...)
	defer exitQuietly(s)

	var errs *multierror.Error

	out := make([]R, 0, len(items))

	for i, item := range items {
		if s.Triggered() {
			break
		}

		r, err := fn(item)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}

		out = append(out, r)
	}

	return out, errs.ErrorOrNil()
}

// exitQuietly exits the implicit scope. The scope was entered locally, so a
// failure means the caller's fn left the scope stack unbalanced and
// interception will leak; that is worth a log line, not a panic.
func exitQuietly(s *Scope) {
	if err := s.Exit(); err != nil {
		currentLogger().Error("failed to exit mapping scope, interception may leak", "error", err)
	}
}
