// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"slices"

	"github.com/matt-FFFFFF/excm/internal/ctxlog"
)

var _ Runnable = (*SerialBatch)(nil)

// SerialBatch runs its commands one at a time, in order.
// The first command that fails ends the batch; later commands are never started.
type SerialBatch struct {
	Runner   ProcessRunner
	Commands []string
}

// Mode implements Runnable.
func (b *SerialBatch) Mode() Mode {
	return ModeSequential
}

// Run implements Runnable. The returned results cover the commands that were started.
func (b *SerialBatch) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).With("runnableType", "SerialBatch")
	results := make(Results, 0, len(b.Commands))

	for i, cmd := range slices.All(b.Commands) {
		res := b.Runner.Run(ctx, cmd, "")
		results = append(results, res)

		if !res.Success {
			logger.Debug("command failed, skipping remaining commands",
				"index", i,
				"exitCode", res.ExitCode,
				"skipped", len(b.Commands)-i-1)

			break
		}
	}

	return results
}
