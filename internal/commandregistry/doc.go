// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandregistry holds the loaded configuration: the named command specs,
// in the order they were declared, and resolves a name to the shell commands it runs.
// A Registry is immutable once built and is passed explicitly to whoever needs it.
package commandregistry
