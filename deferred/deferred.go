// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package deferred

import (
	"fmt"
	"reflect"
)

// Object is satisfied by any type that embeds [Base] and implements Init.
// Init computes derived state from the tracked parameters and may be called
// again after a parameter changes. It must not assume it runs only once.
type Object interface {
	// Init computes derived state from the tracked parameters.
	Init() error

	base() *Base
}

// Base carries the parameter snapshot and the initialized flag. Embed it by
// value; the zero value is ready to use. Once Track has run, the snapshot
// points into the original struct's fields, so objects must not be copied:
// Set and Export on a copy would keep operating on the source. Share built
// objects by pointer.
type Base struct {
	names       []string
	params      map[string]reflect.Value // pointers to the tracked fields
	self        Object
	sealed      bool
	initialized bool
}

func (b *Base) base() *Base { return b }

// Track registers the field behind ptr as a defining parameter under name.
// Registration is order-preserving and at most once per name, and must happen
// before [Build] seals the snapshot.
func (b *Base) Track(name string, ptr any) error {
	if b.sealed {
		return fmt.Errorf("%w: %q", ErrSealed, name)
	}

	if name == "" {
		return ErrEmptyName
	}

	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %q", ErrNotPointer, name)
	}

	if _, dup := b.params[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateParam, name)
	}

	if b.params == nil {
		b.params = make(map[string]reflect.Value)
	}

	b.names = append(b.names, name)
	b.params[name] = rv

	return nil
}

// Params returns the tracked parameter names in registration order.
func (b *Base) Params() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)

	return out
}

// Initialized reports whether derived state is current with respect to the
// tracked parameters.
func (b *Base) Initialized() bool {
	return b.initialized
}

// Invalidate clears the initialized flag. Call it after mutating a tracked
// field directly rather than through [Base.Set].
func (b *Base) Invalidate() {
	b.initialized = false
}

// Set assigns value to the named parameter and clears the initialized flag.
// This is the interception point for post-construction parameter writes.
func (b *Base) Set(name string, value any) error {
	ptr, ok := b.params[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}

	if err := assign(ptr.Elem(), value); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}

	b.initialized = false

	return nil
}

// Get returns the current value of the named parameter.
func (b *Base) Get(name string) (any, error) {
	ptr, ok := b.params[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}

	return ptr.Elem().Interface(), nil
}

// Build completes first-phase construction: it seals the parameter snapshot
// and runs Init via [Init]. On failure the object is left with its parameters
// assigned, derived state possibly partial, and the initialized flag clear;
// the error is returned unchanged.
func Build(obj Object) error {
	b := obj.base()
	b.self = obj
	b.sealed = true

	return Init(obj)
}

// Init re-runs the object's derived-state computation. The initialized flag
// is cleared first and set again only here, after the object's own Init
// returns, so composed types that chain Init calls are not marked current
// until the outermost computation completes.
func Init(obj Object) error {
	b := obj.base()
	b.initialized = false

	if err := obj.Init(); err != nil {
		return err
	}

	b.initialized = true

	return nil
}

// assign stores value into the addressable field dst, converting between
// numeric kinds when exact assignment is not possible.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.SetZero()
		return nil
	}

	rv := reflect.ValueOf(value)

	switch {
	case rv.Type().AssignableTo(dst.Type()):
		dst.Set(rv)
	case isNumeric(rv.Kind()) && isNumeric(dst.Kind()) && rv.Type().ConvertibleTo(dst.Type()):
		dst.Set(rv.Convert(dst.Type()))
	default:
		return fmt.Errorf("%w: have %s, want %s", ErrParamType, rv.Type(), dst.Type())
	}

	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
