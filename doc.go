// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

/*
Package sciutil is a grab-bag of utilities for numerical and scientific Go
development.

The pieces are independent and live in their own packages:

  - [github.com/marcwadey/sciutil/deferred]: a two-phase construction
    discipline for objects whose derived state is expensive to compute, with
    canonical representation and parameter-only serialization.
  - [github.com/marcwadey/sciutil/interrupt]: scoped suspension of termination
    signals, so long-running computations finish their current step before
    honoring an interrupt.
  - [github.com/marcwadey/sciutil/archive]: JSON/YAML persistence of
    deferred-init objects as parameter files.
  - [github.com/marcwadey/sciutil/basis]: periodic and radial discretization
    bases built on the deferred discipline.
*/
package sciutil
