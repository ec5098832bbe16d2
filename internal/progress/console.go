// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/excm/internal/color"
)

var _ Reporter = (*Console)(nil)

// Console writes events to a pair of writers, one line per event.
// Writes are serialised so that lines from concurrent commands never tear,
// but lines of different commands may interleave.
type Console struct {
	out io.Writer
	err io.Writer
	// ReturnCarriage prefixes each line with "\r" so it overwrites a spinner frame.
	ReturnCarriage bool
	mu             sync.Mutex
}

// NewConsole creates a Console writing normal output to out and warnings to errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out: out,
		err: errOut,
	}
}

// Report implements Reporter.
func (c *Console) Report(event Event) {
	w, line := c.render(event)

	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(w, line)
}

func (c *Console) render(event Event) (io.Writer, string) {
	cr := ""
	if c.ReturnCarriage {
		cr = "\r"
	}

	switch event.Type {
	case EventStarted:
		return c.out, fmt.Sprintf("\n%sExecuting %s%s\n\n", cr, event.Label,
			color.Colorize(event.Command, color.Fg256(color.PaletteGreen)...))

	case EventOutput:
		if event.Data.IsStderr {
			return c.err, cr + color.Colorize(event.Label+event.Data.OutputLine, color.Fg256(color.PaletteAmber)...) + "\n"
		}

		return c.out, cr + event.Label + event.Data.OutputLine + "\n"

	case EventCompleted:
		return c.out, cr + color.Colorize(event.Label+"Execution completed successfully.", color.Fg256(color.PaletteGreen)...) + "\n"

	case EventFailed:
		msg := fmt.Sprintf("%sExecution failed with code %d", event.Label, event.Data.ExitCode)
		if event.Data.Error != nil {
			msg += ": " + strings.TrimSpace(event.Data.Error.Error())
		}

		return c.err, cr + color.Colorize(msg, color.Fg256(color.PaletteOrange)...) + "\n"
	}

	return io.Discard, ""
}

// Message writes an informational line in the given palette color.
// It shares the Console lock with command output.
func (c *Console) Message(toErr bool, paletteColor uint8, msg string) {
	w := c.out
	if toErr {
		w = c.err
	}

	cr := ""
	if c.ReturnCarriage {
		cr = "\r"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(w, cr+color.Colorize(msg, color.Fg256(paletteColor)...)+"\n")
}

// Locker returns the lock guarding the Console's writers, for other writers
// (such as a spinner) that share the same terminal.
func (c *Console) Locker() sync.Locker {
	return &c.mu
}
