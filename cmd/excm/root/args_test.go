// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want Invocation
	}{
		{
			name: "no arguments",
			args: nil,
			want: Invocation{},
		},
		{
			name: "name only",
			args: []string{"build"},
			want: Invocation{Name: "build", HasName: true},
		},
		{
			name: "name and parallel",
			args: []string{"build", "--parallel"},
			want: Invocation{Name: "build", HasName: true, Parallel: true},
		},
		{
			name: "help first has no name",
			args: []string{"--help", "build"},
			want: Invocation{Help: true},
		},
		{
			name: "help after name",
			args: []string{"build", "--help"},
			want: Invocation{Name: "build", HasName: true, Help: true},
		},
		{
			name: "parallel first is taken as the name",
			args: []string{"--parallel", "build"},
			want: Invocation{Name: "--parallel", HasName: true, Parallel: true},
		},
		{
			name: "unknown tokens are ignored",
			args: []string{"build", "--verbose", "extra", "--parallel"},
			want: Invocation{Name: "build", HasName: true, Parallel: true},
		},
		{
			name: "all switches",
			args: []string{"ci", "--parallel", "--help"},
			want: Invocation{Name: "ci", HasName: true, Parallel: true, Help: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseArgs(tc.args))
		})
	}
}
