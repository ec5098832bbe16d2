// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color renders strings with ANSI escape codes, including the 256 color palette.
// Output is plain when NO_COLOR is set, or when stdout is not a terminal and FORCE_COLOR is unset.
package color
