// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
)

// ProcessRunner runs a single shell command to completion.
// The label is prepended to every line of the command's output.
// Run must not return until the process has exited and its output has been delivered.
type ProcessRunner interface {
	Run(ctx context.Context, command, label string) *Result
}

// Runnable is a batch of commands that can be run as a unit.
type Runnable interface {
	// Run executes the batch and returns one result per command that was started.
	Run(ctx context.Context) Results
	// Mode reports how the batch schedules its commands.
	Mode() Mode
}

// Mode selects how a batch schedules its commands.
type Mode int

const (
	// ModeSequential runs commands one at a time, stopping at the first failure.
	ModeSequential Mode = iota
	// ModeParallel runs all commands concurrently and waits for every one.
	ModeParallel
)

// String implements the Stringer interface for Mode.
func (m Mode) String() string {
	if m == ModeParallel {
		return "parallel"
	}

	return "sequential"
}

// ModeFor maps the parallel flag to a Mode.
func ModeFor(parallel bool) Mode {
	if parallel {
		return ModeParallel
	}

	return ModeSequential
}

// New creates the batch that runs commands with runner in the given mode.
func New(runner ProcessRunner, commands []string, mode Mode) Runnable {
	if mode == ModeParallel {
		return &ParallelBatch{Runner: runner, Commands: commands}
	}

	return &SerialBatch{Runner: runner, Commands: commands}
}

// Execute runs commands with runner, in parallel or sequentially.
// No aggregate success is computed; callers inspect the individual results.
func Execute(ctx context.Context, runner ProcessRunner, commands []string, parallel bool) Outcome {
	batch := New(runner, commands, ModeFor(parallel))

	return Outcome{
		Mode:    batch.Mode(),
		Results: batch.Run(ctx),
	}
}
