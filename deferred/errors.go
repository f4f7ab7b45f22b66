// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package deferred

import "errors"

var (
	// ErrEmptyName is returned when a parameter is tracked under an empty name.
	ErrEmptyName = errors.New("deferred: parameter name must not be empty")
	// ErrNotPointer is returned when Track is given anything but a non-nil pointer.
	ErrNotPointer = errors.New("deferred: parameter must be tracked through a non-nil pointer")
	// ErrDuplicateParam is returned when a parameter name is tracked twice.
	ErrDuplicateParam = errors.New("deferred: parameter already tracked")
	// ErrSealed is returned when Track is called after the snapshot was sealed by Build or Restore.
	ErrSealed = errors.New("deferred: parameter snapshot is sealed")
	// ErrUnknownParam is returned when Set or Get names an untracked parameter.
	ErrUnknownParam = errors.New("deferred: unknown parameter")
	// ErrParamType is returned when a value cannot be assigned to a parameter field.
	ErrParamType = errors.New("deferred: value not assignable to parameter")
	// ErrRestoreDecode is returned when a restored mapping entry cannot be decoded into its field.
	ErrRestoreDecode = errors.New("deferred: failed to decode restored parameter")
	// ErrStale may be wrapped by callers that refuse to use derived state
	// while the initialized flag is clear. The package itself never blocks
	// such use; it only tracks the flag.
	ErrStale = errors.New("deferred: derived state is stale")
)
