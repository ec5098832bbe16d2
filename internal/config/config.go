// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/excm/internal/commandregistry"
	"github.com/matt-FFFFFF/excm/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	// DefaultFileName is the configuration file looked for in the working directory.
	DefaultFileName = "ex-cm.config.json"
	// LocationEnvVar overrides the configuration location.
	LocationEnvVar = "EXCM_CONFIG"
)

var (
	// ErrConfigLoad wraps every failure to produce a configuration.
	ErrConfigLoad = errors.New("failed to load configuration")
	// ErrReadConfig is returned when the configuration file cannot be read or fetched.
	ErrReadConfig = errors.New("failed to read configuration file")
	// ErrParseConfig is returned when the configuration file is not a valid JSON object or YAML mapping.
	ErrParseConfig = errors.New("failed to parse configuration file")
)

// FsFactory returns the filesystem local configuration files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Format is the encoding of a configuration file.
type Format int

const (
	// FormatJSON is a JSON object.
	FormatJSON Format = iota
	// FormatYAML is a YAML mapping.
	FormatYAML
)

// FormatFor picks the format from the file extension of location. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFor(location string) Format {
	location, _, _ = strings.Cut(location, goGetterRefSeparator)

	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Location returns the configuration location from the environment, or DefaultFileName.
func Location() string {
	if l := os.Getenv(LocationEnvVar); l != "" {
		return l
	}

	return DefaultFileName
}

// Load reads the configuration at location and builds the registry from it.
// All errors wrap ErrConfigLoad.
func Load(ctx context.Context, location string) (*commandregistry.Registry, error) {
	logger := ctxlog.Logger(ctx).With("location", location)

	var (
		data []byte
		err  error
	)

	if isRemote(location) {
		logger.Debug("fetching remote configuration")
		data, err = fetch(ctx, location)
	} else {
		logger.Debug("reading local configuration")
		data, err = afero.ReadFile(FsFactory(), location)
	}

	if err != nil {
		return nil, errors.Join(ErrConfigLoad, ErrReadConfig, err)
	}

	registry, err := Parse(data, FormatFor(location))
	if err != nil {
		return nil, errors.Join(ErrConfigLoad, err)
	}

	logger.Debug("configuration loaded", "commands", registry.Len())

	return registry, nil
}

// Parse decodes data in the given format and builds the registry.
// Every invalid entry is reported, not just the first.
func Parse(data []byte, format Format) (*commandregistry.Registry, error) {
	var (
		raw []rawEntry
		err error
	)

	switch format {
	case FormatYAML:
		raw, err = decodeYAML(data)
	default:
		raw, err = decodeJSON(data)
	}

	if err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	entries := make([]commandregistry.Entry, 0, len(raw))

	var result *multierror.Error

	for _, r := range raw {
		spec, err := commandregistry.SpecFromValue(r.value)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("command %q: %w", r.name, err))
			continue
		}

		entries = append(entries, commandregistry.Entry{Name: r.name, Spec: spec})
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return commandregistry.New(entries...), nil
}

// rawEntry is a decoded key/value pair, in file order.
type rawEntry struct {
	name  string
	value any
}
