// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The default handler prints human-readable lines with attributes rendered as coloured JSON.
// The level comes from the <EXECUTABLE>_LOG_LEVEL environment variable and defaults to WARN,
// so diagnostics stay out of the way of command output unless asked for.
package ctxlog
