// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"strconv"
	"sync"

	"github.com/matt-FFFFFF/excm/internal/ctxlog"
)

const parallelLabelSeparator = " >> "

var _ Runnable = (*ParallelBatch)(nil)

// ParallelBatch starts all of its commands at once and waits for every one to finish.
type ParallelBatch struct {
	Runner   ProcessRunner
	Commands []string
}

// ParallelLabel returns the output prefix of the command at index i.
func ParallelLabel(i int) string {
	return strconv.Itoa(i+1) + parallelLabelSeparator
}

// Mode implements Runnable.
func (b *ParallelBatch) Mode() Mode {
	return ModeParallel
}

// Run implements Runnable. Results are in command order regardless of completion order.
func (b *ParallelBatch) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).With("runnableType", "ParallelBatch")
	logger.Debug("starting commands", "count", len(b.Commands))

	results := make(Results, len(b.Commands))
	wg := &sync.WaitGroup{}

	for i, cmd := range b.Commands {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i] = b.Runner.Run(ctx, cmd, ParallelLabel(i))
		}()
	}

	wg.Wait()

	logger.Debug("all commands finished", "failed", len(results.Failed()))

	return results
}
