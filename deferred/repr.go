// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package deferred

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Repr renders the canonical display form: the type name followed by the
// tracked parameters in registration order, as TypeName(n1=v1, n2=v2).
// Derived state never appears. Parameter values that implement fmt.Stringer
// render through it, so nested objects built on [Base] recurse naturally.
func Repr(obj Object) string {
	b := obj.base()

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var sb strings.Builder

	sb.WriteString(t.Name())
	sb.WriteByte('(')

	for i, name := range b.names {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(reprValue(b.params[name].Elem().Interface()))
	}

	sb.WriteByte(')')

	return sb.String()
}

// ReprEqual reports whether a and b share a type and identical tracked
// parameters, name for name and value for value, in the same order.
// Parameters that are themselves deferred objects compare by this same
// contract, so independently constructed composites with equal parameters
// are equal.
func ReprEqual(a, b Object) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	ab, bb := a.base(), b.base()
	if !slices.Equal(ab.names, bb.names) {
		return false
	}

	for _, name := range ab.names {
		av := ab.params[name].Elem().Interface()
		bv := bb.params[name].Elem().Interface()

		if !paramEqual(av, bv) {
			return false
		}
	}

	return true
}

// paramEqual recurses through nested objects, whose embedded bookkeeping
// holds instance-specific pointers that DeepEqual would wrongly compare.
func paramEqual(av, bv any) bool {
	if ao, ok := av.(Object); ok {
		bo, ok := bv.(Object)
		return ok && ReprEqual(ao, bo)
	}

	return reflect.DeepEqual(av, bv)
}

// String makes the canonical form available through fmt verbs on any type
// embedding Base. Before Build or Restore the embedding type is unknown, so
// only the parameter list is rendered.
func (b *Base) String() string {
	if b.self != nil {
		return Repr(b.self)
	}

	var sb strings.Builder

	sb.WriteByte('(')

	for i, name := range b.names {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(reprValue(b.params[name].Elem().Interface()))
	}

	sb.WriteByte(')')

	return sb.String()
}

func reprValue(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", v)
}
