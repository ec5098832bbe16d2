// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/matt-FFFFFF/excm/internal/ctxlog"
	"github.com/matt-FFFFFF/excm/internal/progress"
	"github.com/matt-FFFFFF/excm/internal/shell"
	"github.com/matt-FFFFFF/excm/internal/teereader"
	"golang.org/x/sync/errgroup"
)

var _ ProcessRunner = (*OSCommand)(nil)

var (
	// ErrEmptyCommand is returned when the shell command is empty or only whitespace.
	ErrEmptyCommand = errors.New("empty command")
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when the output of the process could not be read.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
)

// OSCommand runs shell commands as child processes of the platform shell.
// The child inherits the environment and working directory of this process.
type OSCommand struct {
	Reporter progress.Reporter // Receives start, output and completion events
	Stdin    io.Reader         // Standard input of the child, the null device if nil
}

// NewOSCommand creates an OSCommand that reports to reporter.
// A nil reporter discards events.
func NewOSCommand(reporter progress.Reporter) *OSCommand {
	if reporter == nil {
		reporter = progress.NullReporter{}
	}

	return &OSCommand{Reporter: reporter}
}

// Run implements ProcessRunner.
// A non-zero exit is a normal, unsuccessful Result and never an error.
func (c *OSCommand) Run(ctx context.Context, command, label string) *Result {
	logger := ctxlog.Logger(ctx).With("runnableType", "OSCommand").
		With("command", command).
		With("label", label)

	res := &Result{
		Command:  command,
		Label:    label,
		ExitCode: -1,
	}

	c.report(res, progress.EventStarted, progress.EventData{})

	if strings.TrimSpace(command) == "" {
		res.Error = ErrEmptyCommand
		c.finish(res)

		return res
	}

	path, args := shell.Command(command)
	cmd := exec.Command(path, args...)
	cmd.Stdin = c.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		res.Error = errors.Join(ErrFailedToCreatePipe, err)
		c.finish(res)

		return res
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		res.Error = errors.Join(ErrFailedToCreatePipe, err)
		c.finish(res)

		return res
	}

	logger.Debug("starting process", "path", path, "args", args)

	if err := cmd.Start(); err != nil {
		res.Error = errors.Join(ErrCouldNotStartProcess, err)
		c.finish(res)

		return res
	}

	startTime := time.Now()

	logger.Debug("process started", "pid", cmd.Process.Pid)

	outCapture := teereader.New(stdout)
	errCapture := teereader.New(stderr)

	// Both pipes must be drained before Wait, which closes them.
	var g errgroup.Group

	g.Go(func() error { return c.stream(res, outCapture, false) })
	g.Go(func() error { return c.stream(res, errCapture, true) })

	readErr := g.Wait()
	waitErr := cmd.Wait()

	res.StdOut = outCapture.Bytes()
	res.StdErr = errCapture.Bytes()
	res.ExitCode = cmd.ProcessState.ExitCode()
	res.Success = res.ExitCode == 0

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		res.Error = waitErr
		res.Success = false
	}

	if readErr != nil {
		logger.Warn("error reading process output", "error", readErr)
		res.Error = errors.Join(res.Error, readErr)
	}

	logger.Debug("process finished",
		"exitCode", res.ExitCode,
		"duration", time.Since(startTime).Round(time.Millisecond).String(),
		"lastStderrLine", errCapture.LastLine())

	c.finish(res)

	return res
}

// stream forwards r to the reporter one line at a time, as lines arrive.
// A final line without a terminator is still forwarded.
func (c *OSCommand) stream(res *Result, r io.Reader, isStderr bool) error {
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			c.report(res, progress.EventOutput, progress.EventData{
				OutputLine: line,
				IsStderr:   isStderr,
			})
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		// Drain whatever is left so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, br)

		return errors.Join(ErrFailedToReadBuffer, err)
	}
}

func (c *OSCommand) finish(res *Result) {
	t := progress.EventFailed
	if res.Success {
		t = progress.EventCompleted
	}

	c.report(res, t, progress.EventData{
		ExitCode: res.ExitCode,
		Error:    res.Error,
	})
}

func (c *OSCommand) report(res *Result, t progress.EventType, data progress.EventData) {
	if c.Reporter == nil {
		return
	}

	c.Reporter.Report(progress.Event{
		Label:     res.Label,
		Command:   res.Command,
		Type:      t,
		Timestamp: time.Now(),
		Data:      data,
	})
}
