// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package deferred implements a two-phase construction discipline for objects
// whose derived state is expensive to compute.
//
// A type participates by embedding [Base] and implementing Init. The
// constructor assigns the defining parameters, registers each one with
// [Base.Track], and then calls [Build], which seals the parameter snapshot,
// runs Init, and marks the object initialized. Parameters registered this way
// are the object's complete persistent identity: they drive the canonical
// representation ([Repr]), equality for testing ([ReprEqual]), and the
// serialized form ([Export] / [Restore]). Everything Init assigns is
// transient derived state and is excluded from all three.
//
// Writes to a parameter after construction must go through [Base.Set] (or be
// followed by [Base.Invalidate]), which clears the initialized flag. Nothing
// is recomputed automatically: derived state is assumed costly, so callers
// decide when to call [Init] again.
//
//	type Wave struct {
//		deferred.Base
//		N int
//		L float64
//
//		X []float64 // derived
//	}
//
//	func NewWave(n int, l float64) (*Wave, error) {
//		w := &Wave{N: n, L: l}
//		if err := errors.Join(w.Track("N", &w.N), w.Track("L", &w.L)); err != nil {
//			return nil, err
//		}
//		if err := deferred.Build(w); err != nil {
//			return nil, err
//		}
//		return w, nil
//	}
//
// Restoring from an exported mapping bypasses the constructor entirely: the
// entries are assigned directly onto a blank tracked instance and Init is run
// once. A mapping missing a required parameter therefore fails inside Init,
// at restore time.
package deferred
