// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"math"

	"github.com/marcwadey/sciutil/deferred"
)

// Spherical is a 1-dimensional radial basis on (0, R]: exactly N positive
// abscissa, excluding the origin, with the half-integer momenta of a sine
// series. The metric integrates spherically symmetric functions over the full
// 3D volume.
type Spherical struct {
	deferred.Base

	N int
	R float64

	// Derived state, valid while Initialized.
	X      []float64 // radial abscissa, (1..N)*R/N
	K      []float64 // momenta, pi*(1/2+j)/R
	Metric []float64 // 4*pi*r^2*dr per abscissa
	KMax   float64
}

// NewSpherical builds a radial basis with n points on radius r.
func NewSpherical(n int, r float64) (*Spherical, error) {
	s := &Spherical{N: n, R: r}
	if err := s.track(); err != nil {
		return nil, err
	}

	if err := deferred.Build(s); err != nil {
		return nil, err
	}

	return s, nil
}

// EmptySpherical returns a tracked but uninitialized Spherical for use with
// deferred.Restore or archive loading.
func EmptySpherical() *Spherical {
	s := &Spherical{}
	s.track() //nolint:errcheck // registration on a fresh value cannot collide

	return s
}

func (s *Spherical) track() error {
	return errors.Join(
		s.Track("N", &s.N),
		s.Track("R", &s.R),
	)
}

// Init derives the radial abscissa, momenta, and metric from N and R.
func (s *Spherical) Init() error {
	if s.N <= 0 || s.R <= 0 {
		return ErrNonPositive
	}

	dr := s.R / float64(s.N)

	s.X = make([]float64, s.N)
	s.K = make([]float64, s.N)
	s.Metric = make([]float64, s.N)

	for j := 0; j < s.N; j++ {
		r := float64(j+1) * dr
		s.X[j] = r
		s.K[j] = math.Pi * (0.5 + float64(j)) / s.R
		s.Metric[j] = 4 * math.Pi * r * r * dr
	}

	s.KMax = s.K[s.N-1]

	return nil
}
