// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs a list of shell commands, either one after another or all at once.
//
// A SerialBatch runs its commands in order and stops at the first one that fails.
// A ParallelBatch starts every command immediately, labels each one's output with its
// 1-based position ("1 >> ", "2 >> ", ...) and waits for all of them; a failure never
// affects its siblings.
//
// A failing command is not an error: it is a Result with Success set to false.
// Result.Error is reserved for the cases where no process could be run at all.
package runbatch
