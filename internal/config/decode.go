// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var (
	// ErrNotAnObject is returned when the top level of the file is not an object or mapping.
	ErrNotAnObject = errors.New("top level value must be an object of command names")
	// ErrTrailingData is returned when a JSON file has content after the top level object.
	ErrTrailingData = errors.New("unexpected data after top level object")
)

// decodeJSON decodes a JSON object, keeping the order of its keys.
func decodeJSON(data []byte) ([]rawEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotAnObject
	}

	var entries []rawEntry

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrNotAnObject, tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}

		entries = append(entries, rawEntry{name: name, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return entries, nil
}

// decodeYAML decodes a YAML mapping, keeping the order of its keys.
func decodeYAML(data []byte) ([]rawEntry, error) {
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(data, &ms); err != nil {
		return nil, err //nolint:wrapcheck
	}

	entries := make([]rawEntry, 0, len(ms))

	for _, item := range ms {
		entries = append(entries, rawEntry{name: fmt.Sprint(item.Key), value: item.Value})
	}

	return entries, nil
}
