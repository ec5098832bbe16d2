// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event represents a real-time update from command execution.
type Event struct {
	Label     string    // Display prefix of the command, empty in sequential mode
	Command   string    // The shell command the event belongs to
	Type      EventType // What happened
	Timestamp time.Time // When the event occurred
	Data      EventData // Type-specific data
}

// EventType represents the type of progress event.
type EventType int

const (
	// EventStarted indicates a command is about to be spawned.
	EventStarted EventType = iota
	// EventOutput indicates a line of stdout or stderr output.
	EventOutput
	// EventCompleted indicates the command exited with status 0.
	EventCompleted
	// EventFailed indicates the command exited non-zero or could not be started.
	EventFailed
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventStarted:
		return "started"
	case EventOutput:
		return "output"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventData contains type-specific information for progress events.
type EventData struct {
	// For EventOutput
	OutputLine string // The line, without its line terminator
	IsStderr   bool   // True if this is stderr output

	// For EventCompleted/EventFailed
	ExitCode int   // Command exit code, -1 if the process never ran
	Error    error // Set only when the process could not be started
}

// Reporter receives progress events.
// Report may be called concurrently by commands running in parallel, and must
// handle each event before returning so that output is never reordered.
type Reporter interface {
	Report(event Event)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(event Event)

// Report calls f(event).
func (f ReporterFunc) Report(event Event) {
	f(event)
}

// NullReporter is a no-op implementation of Reporter.
type NullReporter struct{}

// Report implements Reporter by doing nothing.
func (NullReporter) Report(Event) {}
