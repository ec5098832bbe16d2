// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell builds the argument vector that runs a command string through the platform shell.
package shell

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows          = "windows"
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for POSIX shells
	winSystem32          = "System32"   // Directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // Command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Shell used on Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
	winSystemRootDefault = `C:\Windows`
)

// Command returns the shell executable and the arguments that make it run command.
// The command string is passed through untouched, so an empty or malformed command is
// left for the shell to reject with a non-zero exit.
func Command(command string) (string, []string) {
	return commandFor(runtime.GOOS, command)
}

func commandFor(goos, command string) (string, []string) {
	if goos == GOOSWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = winSystemRootDefault
		}

		return filepath.Join(systemRoot, winSystem32, cmdExe), []string{commandSwitchWindows, command}
	}

	return binSh, []string{commandSwitchUnix, command}
}
