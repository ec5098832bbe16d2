// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

const (
	parallelArg = "--parallel"
	helpArg     = "--help"
)

// Invocation is the interpreted command line.
type Invocation struct {
	// Name is the configuration entry to run. Only meaningful when HasName is true.
	Name     string
	HasName  bool
	Parallel bool
	Help     bool
}

// ParseArgs interprets the arguments following the program name.
// The first token names the entry unless it is --help. The --parallel and --help
// tokens switch mode wherever they appear; anything else is ignored.
func ParseArgs(args []string) Invocation {
	var inv Invocation

	if len(args) > 0 && args[0] != helpArg {
		inv.Name = args[0]
		inv.HasName = true
	}

	for _, arg := range args {
		switch arg {
		case parallelArg:
			inv.Parallel = true
		case helpArg:
			inv.Help = true
		}
	}

	return inv
}
