// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package basis provides discretization bases for representing functions on
// periodic boxes and in radial symmetry. A basis is defined by a handful of
// parameters (point counts, box sizes) from which the abscissa, wavenumbers,
// and integration metric are derived; the derivation follows the deferred
// two-phase construction discipline, so bases print, compare, and persist by
// their defining parameters alone.
//
// Spectral operators (laplacians, convolutions) are not provided: bases
// describe the grid, callers bring their own transforms.
package basis
