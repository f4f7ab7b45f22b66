// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package basis

import (
	"errors"

	"github.com/marcwadey/sciutil/deferred"
)

// Periodic is an N-dimensional periodic box basis. Nxyz counts the lattice
// points per dimension and Lxyz gives the box lengths; everything else is
// derived.
type Periodic struct {
	deferred.Base

	Nxyz             []int
	Lxyz             []float64
	SymmetricLattice bool

	// Derived state, valid while Initialized.
	X      [][]float64 // abscissa per dimension
	K      [][]float64 // angular wavenumbers per dimension, FFT order
	Metric float64     // volume element, prod(L/N)
	KMax   []float64   // largest momentum magnitude per dimension
}

// NewPeriodic builds a periodic basis with nxyz points on a box of size lxyz.
func NewPeriodic(nxyz []int, lxyz []float64, symmetricLattice bool) (*Periodic, error) {
	p := &Periodic{Nxyz: nxyz, Lxyz: lxyz, SymmetricLattice: symmetricLattice}
	if err := p.track(); err != nil {
		return nil, err
	}

	if err := deferred.Build(p); err != nil {
		return nil, err
	}

	return p, nil
}

// EmptyPeriodic returns a tracked but uninitialized Periodic for use with
// deferred.Restore or archive loading.
func EmptyPeriodic() *Periodic {
	p := &Periodic{}
	p.track() //nolint:errcheck // registration on a fresh value cannot collide

	return p
}

func (p *Periodic) track() error {
	return errors.Join(
		p.Track("Nxyz", &p.Nxyz),
		p.Track("Lxyz", &p.Lxyz),
		p.Track("SymmetricLattice", &p.SymmetricLattice),
	)
}

// Init derives the abscissa, wavenumbers, metric, and momentum cutoffs from
// the current parameters.
func (p *Periodic) Init() error {
	if len(p.Nxyz) == 0 || len(p.Nxyz) != len(p.Lxyz) {
		return ErrDimensionMismatch
	}

	dim := len(p.Nxyz)
	p.X = make([][]float64, dim)
	p.K = make([][]float64, dim)
	p.KMax = make([]float64, dim)
	p.Metric = 1.0

	for i := 0; i < dim; i++ {
		n, l := p.Nxyz[i], p.Lxyz[i]
		if n <= 0 || l <= 0 {
			return ErrNonPositive
		}

		p.X[i] = lattice(n, l, p.SymmetricLattice)
		p.K[i] = wavenumbers(n, l)
		p.KMax[i] = maxAbs(p.K[i])
		p.Metric *= l / float64(n)
	}

	return nil
}

// Dim returns the number of dimensions.
func (p *Periodic) Dim() int {
	return len(p.Nxyz)
}
