// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the command configuration file into a commandregistry.Registry.
//
// The file is a JSON object (or a YAML mapping, for .yaml and .yml files) whose keys are
// command names and whose values are a shell command string or a list of them.
// Local paths are read through an afero filesystem; locations using go-getter syntax
// (for example "git::https://example.com/repo.git//excm.json?ref=main") are downloaded first.
package config
