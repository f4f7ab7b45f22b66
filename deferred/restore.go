// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package deferred

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Export returns the persistent form of obj: a mapping holding exactly the
// tracked parameters by name. Derived state, however large, is never
// included, so the exported size is proportional to the parameters alone.
func Export(obj Object) map[string]any {
	b := obj.base()

	out := make(map[string]any, len(b.names))
	for _, name := range b.names {
		out[name] = b.params[name].Elem().Interface()
	}

	return out
}

// Restore reconstructs obj from a mapping produced by [Export], possibly in
// another process: every entry is assigned directly onto the tracked field,
// the snapshot is sealed, and Init is run. The original constructor is never
// invoked. Entries are decoded with mapstructure, so values that passed
// through JSON or YAML (for example ints widened to float64) land back in
// their declared field types.
//
// A mapping key with no tracked parameter is ignored. A tracked parameter
// with no mapping entry keeps its zero value; if Init needs it, Init fails
// and that failure is returned.
func Restore(obj Object, params map[string]any) error {
	b := obj.base()
	b.self = obj
	b.sealed = true

	for _, name := range b.names {
		value, ok := params[name]
		if !ok {
			continue
		}

		if err := mapstructure.Decode(value, b.params[name].Interface()); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrRestoreDecode, name, err)
		}
	}

	return Init(obj)
}
