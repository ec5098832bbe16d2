// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidCommandSpec is returned when a value is neither a string nor a list of strings.
var ErrInvalidCommandSpec = errors.New("command must be a string or a list of strings")

// CommandSpec is the configured value of a command name:
// either a single shell command or an ordered sequence of them.
type CommandSpec struct {
	commands []string
	sequence bool
}

// Single creates a CommandSpec holding one shell command.
func Single(command string) CommandSpec {
	return CommandSpec{commands: []string{command}}
}

// Sequence creates a CommandSpec holding an ordered list of shell commands.
func Sequence(commands ...string) CommandSpec {
	return CommandSpec{commands: slices.Clone(commands), sequence: true}
}

// SpecFromValue converts a decoded configuration value into a CommandSpec.
// Strings become a single command; lists must contain only strings.
func SpecFromValue(v any) (CommandSpec, error) {
	switch val := v.(type) {
	case string:
		return Single(val), nil
	case []string:
		return Sequence(val...), nil
	case []any:
		commands := make([]string, 0, len(val))

		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return CommandSpec{}, fmt.Errorf("%w: item %d is %T", ErrInvalidCommandSpec, i, item)
			}

			commands = append(commands, s)
		}

		return Sequence(commands...), nil
	default:
		return CommandSpec{}, fmt.Errorf("%w: got %T", ErrInvalidCommandSpec, v)
	}
}

// IsSequence reports whether the spec was declared as a list.
func (s CommandSpec) IsSequence() bool {
	return s.sequence
}

// Commands returns the shell commands of the spec in order.
// A single command is returned as a one-element slice. The slice is a copy.
func (s CommandSpec) Commands() []string {
	if s.commands == nil {
		return []string{}
	}

	return slices.Clone(s.commands)
}
