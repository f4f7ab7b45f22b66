// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package basis

import "errors"

var (
	// ErrDimensionMismatch is returned when Nxyz and Lxyz differ in length or are empty.
	ErrDimensionMismatch = errors.New("basis: Nxyz and Lxyz must be non-empty and of equal length")
	// ErrNonPositive is returned when a point count or box length is not positive.
	ErrNonPositive = errors.New("basis: point counts and box lengths must be positive")
)
