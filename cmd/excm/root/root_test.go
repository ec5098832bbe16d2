// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/matt-FFFFFF/excm/internal/config"
	"github.com/matt-FFFFFF/excm/internal/progress"
	"github.com/matt-FFFFFF/excm/internal/runbatch"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const testConfig = `{
  "test": "go test ./...",
  "ci": ["go vet ./...", "go test ./..."],
  "noop": [],
  "lint": "golangci-lint run"
}`

type invocation struct {
	command string
	label   string
}

// recordingRunner records invocations and succeeds without spawning anything.
type recordingRunner struct {
	mu    sync.Mutex
	calls []invocation
}

func (r *recordingRunner) Run(_ context.Context, command, label string) *runbatch.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, invocation{command: command, label: label})

	return &runbatch.Result{Command: command, Label: label, Success: true}
}

func (r *recordingRunner) invocations() []invocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]invocation(nil), r.calls...)
}

// setup installs an in-memory configuration file and a recording runner.
// A nil content leaves the file system empty.
func setup(t *testing.T, content *string) *recordingRunner {
	t.Helper()
	t.Setenv(config.LocationEnvVar, "")

	fs := afero.NewMemMapFs()
	if content != nil {
		require.NoError(t, afero.WriteFile(fs, config.DefaultFileName, []byte(*content), 0o644))
	}

	runner := &recordingRunner{}
	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs { return fs })
	stubs.Stub(&newRunner, func(progress.Reporter) runbatch.ProcessRunner { return runner })
	t.Cleanup(stubs.Reset)

	return runner
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := New()
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	cmd.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := cmd.Run(context.Background(), append([]string{"excm"}, args...))

	return out.String(), errOut.String(), err
}

func ptr(s string) *string {
	return &s
}

func TestHelp(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		wantExecute string
	}{
		{
			name:        "sequence sequential",
			args:        []string{"ci", "--help"},
			wantExecute: "ci will execute go vet ./...,go test ./... (sequential)",
		},
		{
			name:        "single parallel",
			args:        []string{"test", "--parallel", "--help"},
			wantExecute: "test will execute go test ./... (parallel)",
		},
		{
			name: "help only",
			args: []string{"--help"},
		},
		{
			name: "unknown name",
			args: []string{"deploy", "--help"},
		},
		{
			name: "empty sequence",
			args: []string{"noop", "--help"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runner := setup(t, ptr(testConfig))

			out, errOut, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Empty(t, errOut)
			assert.Empty(t, runner.invocations(), "help never runs anything")

			if tc.wantExecute != "" {
				assert.True(t, strings.HasPrefix(out, tc.wantExecute+"\n"), "got %q", out)
			} else {
				assert.NotContains(t, out, "will execute")
			}

			assert.Contains(t, out, usageLine)
			assert.True(t, strings.HasSuffix(out, "Available Commands:\ntest\nci\nnoop\nlint\n"), "got %q", out)
		})
	}
}

func TestNotFound(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown name", args: []string{"deploy"}},
		{name: "unknown name parallel", args: []string{"deploy", "--parallel"}},
		{name: "no arguments", args: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runner := setup(t, ptr(testConfig))

			out, errOut, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Empty(t, out)
			assert.Contains(t, errOut, NotFoundMessage)
			assert.Empty(t, runner.invocations())
		})
	}
}

func TestRun_Sequential(t *testing.T) {
	runner := setup(t, ptr(testConfig))

	_, _, err := run(t, "ci")
	require.NoError(t, err)

	assert.Equal(t, []invocation{
		{command: "go vet ./...", label: ""},
		{command: "go test ./...", label: ""},
	}, runner.invocations())
}

func TestRun_Parallel(t *testing.T) {
	runner := setup(t, ptr(testConfig))

	_, _, err := run(t, "ci", "--parallel")
	require.NoError(t, err)

	assert.ElementsMatch(t, []invocation{
		{command: "go vet ./...", label: "1 >> "},
		{command: "go test ./...", label: "2 >> "},
	}, runner.invocations())
}

func TestRun_EmptySequenceRunsNothing(t *testing.T) {
	runner := setup(t, ptr(testConfig))

	_, errOut, err := run(t, "noop")
	require.NoError(t, err)
	assert.NotContains(t, errOut, NotFoundMessage)
	assert.Empty(t, runner.invocations())
}

func TestConfigError(t *testing.T) {
	testCases := []struct {
		name    string
		content *string
	}{
		{name: "missing file", content: nil},
		{name: "invalid json", content: ptr(`{"test": `)},
		{name: "invalid value", content: ptr(`{"test": 42}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runner := setup(t, tc.content)

			out, errOut, err := run(t, "test")
			require.Error(t, err)

			var exitErr cli.ExitCoder
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 1, exitErr.ExitCode())

			assert.Empty(t, out)
			assert.Contains(t, errOut, `Please provide valid json config in file "ex-cm.config.json"`)
			assert.Empty(t, runner.invocations())
		})
	}
}

func TestRun_RealProcesses(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}

	cfg := `{"ok": "echo hello", "bad": ["echo first", "exit 3", "echo never"]}`
	setup(t, &cfg)

	stubs := gostub.Stub(&newRunner, func(r progress.Reporter) runbatch.ProcessRunner {
		return runbatch.NewOSCommand(r)
	})
	defer stubs.Reset()

	t.Run("success", func(t *testing.T) {
		out, _, err := run(t, "ok")
		require.NoError(t, err)
		assert.Contains(t, out, "Executing echo hello")
		assert.Contains(t, out, "\nhello\n")
		assert.Contains(t, out, "Execution completed successfully.")
	})

	t.Run("failure keeps exit code zero", func(t *testing.T) {
		out, errOut, err := run(t, "bad")
		require.NoError(t, err)
		assert.Contains(t, out, "\nfirst\n")
		assert.Contains(t, errOut, "Execution failed with code 3")
		assert.NotContains(t, out, "never")
	})
}
