// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/excm/internal/color"
	"github.com/matt-FFFFFF/excm/internal/commandregistry"
	"github.com/matt-FFFFFF/excm/internal/runbatch"
)

const usageLine = "Usage: excm <command> [--parallel] [--help]"

// writeHelp prints what inv would execute, then the usage and every configured name.
// It never runs anything.
func writeHelp(w io.Writer, reg *commandregistry.Registry, inv Invocation) error {
	var sb strings.Builder

	if inv.HasName {
		if cmds := reg.Resolve(inv.Name); len(cmds) > 0 {
			fmt.Fprintf(&sb, "%s will execute %s (%s)\n\n",
				inv.Name, strings.Join(cmds, ","), runbatch.ModeFor(inv.Parallel))
		}
	}

	sb.WriteString(usageLine + "\n\n")
	sb.WriteString("Available Commands:\n")

	name := nameStyle(w)
	for _, n := range reg.Names() {
		sb.WriteString(name.Render(n) + "\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err //nolint:wrapcheck
}

func nameStyle(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	if !color.Enabled() {
		return r.NewStyle()
	}

	return r.NewStyle().Bold(true)
}
