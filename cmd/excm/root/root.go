// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package root contains the excm command: it interprets the command line, prints help,
// and runs the named configuration entry.
package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/excm"
	"github.com/matt-FFFFFF/excm/internal/color"
	"github.com/matt-FFFFFF/excm/internal/config"
	"github.com/matt-FFFFFF/excm/internal/ctxlog"
	"github.com/matt-FFFFFF/excm/internal/progress"
	"github.com/matt-FFFFFF/excm/internal/runbatch"
	"github.com/matt-FFFFFF/excm/internal/spinner"
	"github.com/urfave/cli/v3"
)

// NotFoundMessage is printed when the named entry is not in the configuration.
const NotFoundMessage = "Command not found in the configuration file."

// newRunner builds the process runner for a console. Replaced in tests.
var newRunner = func(reporter progress.Reporter) runbatch.ProcessRunner {
	return runbatch.NewOSCommand(reporter)
}

// New creates the root command. Flag parsing is left to ParseArgs.
func New() *cli.Command {
	return &cli.Command{
		Name:            "excm",
		Usage:           "execute named shell commands from a configuration file",
		UsageText:       "excm <command> [--parallel] [--help]",
		Version:         fmt.Sprintf("%s (commit: %s)", excm.Version, excm.Commit),
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Action:          actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	inv := ParseArgs(cmd.Args().Slice())
	console := progress.NewConsole(cmd.Writer, cmd.ErrWriter)

	spin := startSpinner(cmd.Writer, console)
	defer spin.Stop()

	location := config.Location()

	reg, err := config.Load(ctx, location)
	if err != nil {
		ctxlog.Error(ctx, "configuration load failed", "location", location, "error", err)
		console.Message(true, color.PaletteOrange, fmt.Sprintf("Please provide valid json config in file %q", location))

		return cli.Exit("", 1)
	}

	if inv.Help {
		spin.Stop()
		return writeHelp(cmd.Writer, reg, inv)
	}

	if !inv.HasName {
		console.Message(true, color.PaletteOrange, NotFoundMessage)
		return nil
	}

	spec, ok := reg.Lookup(inv.Name)
	if !ok {
		console.Message(true, color.PaletteOrange, NotFoundMessage)
		return nil
	}

	outcome := runbatch.Execute(ctx, newRunner(console), spec.Commands(), inv.Parallel)
	ctxlog.Debug(ctx, "execution finished",
		"name", inv.Name,
		"mode", outcome.Mode.String(),
		"attempted", len(outcome.Results),
		"failed", len(outcome.Results.Failed()),
	)

	return nil
}

// startSpinner animates on a terminal stdout and returns a no-op spinner otherwise.
// On a terminal, console lines carry a carriage return so they overwrite the frame.
func startSpinner(w io.Writer, console *progress.Console) *spinner.Spinner {
	f, ok := w.(*os.File)
	if !ok || !spinner.IsTerminal(f) {
		return spinner.New(io.Discard)
	}

	console.ReturnCarriage = true
	s := spinner.New(w, spinner.WithLocker(console.Locker()))
	s.Start()

	return s
}
