// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package archive persists deferred-init objects as parameter files.
//
// Only the tracked parameter mapping ever reaches disk; derived state is
// recomputed on load by the object's own Init. JSON and YAML encodings are
// provided, both through an afero filesystem so tests and callers can
// redirect the destination.
package archive
