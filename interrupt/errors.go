// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package interrupt

import "errors"

var (
	// ErrAlreadyExited is returned when Exit is called twice on the same scope.
	ErrAlreadyExited = errors.New("interrupt: scope already exited")
	// ErrOutOfOrderExit is returned when Exit is called on a scope that is
	// not the innermost active one. Nested scopes must unwind strictly LIFO.
	ErrOutOfOrderExit = errors.New("interrupt: scopes must exit in LIFO order")
)
