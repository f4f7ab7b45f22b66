// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context and supplies the
// library's default logger.
//
// The default handler pretty-prints records for the console. The log level is
// read from an environment variable derived from the executable name, e.g. a
// binary named "solver" reads SOLVER_LOG_LEVEL.
package ctxlog
