// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package basis

import "math"

// lattice returns the n abscissa of a periodic box of length l. With
// symmetric false the origin is a lattice point but the lattice is asymmetric
// for even n; with symmetric true the lattice is shifted half a step so the
// origin sits between points.
func lattice(n int, l float64, symmetric bool) []float64 {
	offset := 0.0
	if symmetric {
		offset = 0.5
	}

	dx := l / float64(n)
	start := -float64(n) / 2

	x := make([]float64, n)
	for j := range x {
		x[j] = dx * (start + float64(j) + offset)
	}

	return x
}

// wavenumbers returns the angular wavenumbers 2*pi*j/l in FFT order: the
// non-negative frequencies first, then the negative ones. The single highest
// momentum is kept; dropping it worsens the scaling of high-frequency errors.
func wavenumbers(n int, l float64) []float64 {
	k := make([]float64, n)

	for j := range k {
		jj := j
		if j >= (n+1)/2 {
			jj = j - n
		}

		k[j] = 2 * math.Pi * float64(jj) / l
	}

	return k
}

func maxAbs(xs []float64) float64 {
	max := 0.0
	for _, x := range xs {
		max = math.Max(max, math.Abs(x))
	}

	return max
}
