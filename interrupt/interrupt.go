// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package interrupt

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/marcwadey/sciutil/internal/ctxlog"
)

// defaultSignals are intercepted when a scope does not override them.
var defaultSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	os.Interrupt,
}

// reraise restores default handling for sig and sends it to this process
// again. A package variable so tests can stub the terminal step.
var reraise = func(sig os.Signal) {
	signal.Reset(sig)

	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}

	_ = p.Signal(sig)
}

// Signal disposition is process global, so all scope bookkeeping lives behind
// one mutex: the active scope stack, the interception channel and its watcher,
// and the state of the current interrupt sequence.
var (
	mu           sync.Mutex
	stack        []*Scope
	sigCh        chan os.Signal
	watcherDone  chan struct{}
	intercepting bool
	triggered    bool
	forceDepth   int
	seen         map[string]int // per-signal delivery count this sequence
)

// Scope is an active interrupt-suspension region. Obtain one with [Enter] and
// release it with [Exit]; the zero value is not usable.
type Scope struct {
	signals   []os.Signal
	forceExit bool
	logger    *slog.Logger

	exited bool
	frozen bool // Triggered() result captured at exit
}

// Option configures a scope at Enter.
type Option func(*Scope)

// WithSignals overrides the set of intercepted signals. Only the outermost
// Enter installs interception, so the option is effective there alone.
func WithSignals(sigs ...os.Signal) Option {
	return func(s *Scope) {
		s.signals = sigs
	}
}

// WithForceExit makes a second signal during the same interrupt sequence
// restore default handling and re-raise itself, terminating the process.
// The default is to keep suspending.
func WithForceExit() Option {
	return func(s *Scope) {
		s.forceExit = true
	}
}

// WithLogger routes this scope's notices to logger instead of the default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scope) {
		s.logger = logger
	}
}

// Enter opens a scope. If it is the outermost one, interception for the
// scope's signals is installed and a watcher goroutine starts draining them.
func Enter(opts ...Option) *Scope {
	s := &Scope{signals: defaultSignals}
	for _, opt := range opts {
		opt(s)
	}

	mu.Lock()
	defer mu.Unlock()

	if len(stack) == 0 {
		triggered = false
		seen = make(map[string]int)
		sigCh = make(chan os.Signal, 8)
		watcherDone = make(chan struct{})
		intercepting = true
		signal.Notify(sigCh, s.signals...)

		go watch(sigCh, watcherDone)
	}

	if s.forceExit {
		forceDepth++
	}

	stack = append(stack, s)

	return s
}

// Depth returns the number of currently active scopes.
func Depth() int {
	mu.Lock()
	defer mu.Unlock()

	return len(stack)
}

// Triggered reports whether an interrupt arrived during this scope. The flag
// is monotonic: once set it stays set until the scope stack fully unwinds.
// After Exit the value observed at exit time is retained.
func (s *Scope) Triggered() bool {
	mu.Lock()
	defer mu.Unlock()

	if s.exited {
		return s.frozen
	}

	return triggered
}

// Unregister stops intercepting new signals without exiting the scope, for
// callers whose outer environment already manages signal handling. The
// nesting counter and the triggered flag keep their usual semantics; only
// interception ends. Interception is process global, so this affects every
// active scope.
func (s *Scope) Unregister() {
	mu.Lock()
	defer mu.Unlock()

	if s.exited || !intercepting {
		return
	}

	signal.Stop(sigCh)
	intercepting = false
}

// Exit closes the scope. The innermost active scope must exit first; when the
// last one exits, interception is removed and signal delivery is restored
// exactly as it was before the outermost Enter, on every exit path.
func (s *Scope) Exit() error {
	mu.Lock()

	if s.exited {
		mu.Unlock()
		return ErrAlreadyExited
	}

	if len(stack) == 0 || stack[len(stack)-1] != s {
		mu.Unlock()
		return ErrOutOfOrderExit
	}

	stack = stack[:len(stack)-1]
	s.exited = true
	s.frozen = triggered

	if s.forceExit {
		forceDepth--
	}

	if len(stack) > 0 {
		mu.Unlock()
		return nil
	}

	// Outermost exit: tear interception down and wait for the watcher so no
	// goroutine outlives the scope.
	if intercepting {
		signal.Stop(sigCh)
		intercepting = false
	}

	ch, done := sigCh, watcherDone
	sigCh, watcherDone = nil, nil
	triggered = false
	seen = nil

	mu.Unlock()

	close(ch)
	<-done

	return nil
}

// Trigger delivers sig through the same path as an operating-system signal.
// Without an active scope it is a no-op. It exists for tests and for callers
// that want to request a graceful stop programmatically.
func Trigger(sig os.Signal) {
	deliver(sig)
}

func watch(ch chan os.Signal, done chan struct{}) {
	defer close(done)

	for sig := range ch {
		deliver(sig)
	}
}

// deliver records one signal arrival for the current sequence: the first
// arrival of a signal sets the triggered flag; a repeat arrival either keeps
// suspending or, when some active scope asked for force-exit, restores
// default handling and re-raises.
func deliver(sig os.Signal) {
	mu.Lock()

	if len(stack) == 0 {
		mu.Unlock()
		return
	}

	seen[sig.String()]++
	repeat := seen[sig.String()] > 1
	force := forceDepth > 0
	triggered = true
	logger := activeLogger()

	if repeat && force && intercepting {
		signal.Stop(sigCh)
		intercepting = false
	}

	mu.Unlock()

	switch {
	case !repeat:
		logger.Warn("interrupt received, deferring termination until the scope exits", "signal", sig.String())
	case !force:
		logger.Warn("interrupt already pending, continuing to defer", "signal", sig.String())
	default:
		logger.Error("second interrupt, restoring default handling and re-raising", "signal", sig.String())
		reraise(sig)
	}
}

// currentLogger is activeLogger for callers not holding mu.
func currentLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	return activeLogger()
}

// activeLogger returns the innermost scope logger, if any. Callers must hold mu.
func activeLogger() *slog.Logger {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].logger != nil {
			return stack[i].logger
		}
	}

	return ctxlog.DefaultLogger
}
