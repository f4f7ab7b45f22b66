// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interrupt suspends termination signals for the duration of a scope,
// so that long-running numerical work is not torn down mid-step.
//
// While at least one scope is active, an arriving SIGINT/SIGTERM does not
// terminate the process; it sets a monotonic triggered flag that the caller
// polls as a loop condition:
//
//	s := interrupt.Enter()
//	defer s.Exit()
//	for step := 0; step < n && !s.Triggered(); step++ {
//		evolve(psi, dt)
//	}
//
// Scopes nest with reference counting: only the outermost Enter installs
// interception and only the matching Exit removes it, restoring signal
// delivery exactly as it was. Exits must be strictly LIFO; an out-of-order
// Exit is reported, not tolerated. Because signal disposition is process
// global, scopes are a process-wide resource and are not safe to manage from
// multiple goroutines concurrently.
//
// A second signal during the same scope keeps being suspended by default,
// which is the safe choice for unattended batch work. [WithForceExit] opts
// into the escape hatch: the second signal restores default handling and
// re-raises itself, terminating a truly stuck loop.
//
// [Map] and [TryMap] apply a function element by element inside an implicit
// scope, stopping cleanly between elements once an interrupt is pending and
// returning whatever was computed so far.
package interrupt
