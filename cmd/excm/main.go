// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the excm command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/excm/cmd/excm/root"
	"github.com/matt-FFFFFF/excm/internal/ctxlog"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	// A configuration error exits inside Run via cli.Exit; command failures do not
	// change the exit code.
	if err := root.New().Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Debug(ctx, "command completed")
}
