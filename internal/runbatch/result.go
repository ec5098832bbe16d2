// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"slices"
)

// Result represents the outcome of running a single shell command.
type Result struct {
	Command  string // The shell command that was run
	Label    string // The display prefix used for its output
	Success  bool   // True if and only if the process exited with status 0
	ExitCode int    // Exit status, -1 if the process never ran or was killed by a signal
	StdOut   []byte // Everything the command wrote to stdout
	StdErr   []byte // Everything the command wrote to stderr
	Error    error  // Set when the process could not be run or its output could not be read
}

// Results is a slice of Result pointers, in command order.
type Results []*Result

// Failed returns the results that did not succeed.
func (r Results) Failed() Results {
	var failed Results

	for v := range slices.Values(r) {
		if !v.Success {
			failed = append(failed, v)
		}
	}

	return failed
}

// Outcome is what a call to Execute produced.
type Outcome struct {
	Mode    Mode
	Results Results
}
