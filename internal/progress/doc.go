// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress carries the events a running command emits: when it starts,
// each line of output, and how it finished. A Reporter receives them as they happen;
// the Console reporter renders them for a human at a terminal.
package progress
