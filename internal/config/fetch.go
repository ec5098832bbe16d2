// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

const (
	goGetterForcedSeparator = "::"
	goGetterSchemeSeparator = "://"
	goGetterPathSeparator   = "//"
	goGetterRefSeparator    = "?"
	minimumGetterParts      = 3 // scheme, host and sub-path
)

// ErrInvalidURL is returned when a go-getter URL cannot be split into a source and a file name.
var ErrInvalidURL = errors.New("invalid configuration URL")

// isRemote reports whether location uses go-getter syntax rather than naming a local file.
func isRemote(location string) bool {
	return strings.Contains(location, goGetterForcedSeparator) ||
		strings.Contains(location, goGetterSchemeSeparator)
}

// fetch downloads the configuration at a go-getter URL and returns its content.
// URLs with a sub-path ("...//dir/file.json") fetch the containing directory and read
// the file from it, which is what git and archive sources need.
func fetch(ctx context.Context, url string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "excm-getter-*")
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "config"),
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	fileName := ""

	if strings.Count(url, goGetterPathSeparator) >= minimumGetterParts-1 {
		src, name, err := splitFileNameFromGetterURL(url)
		if err != nil {
			return nil, err
		}

		req.Src = src
		req.GetMode = getter.ModeDir
		fileName = name
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	target := res.Dst
	if fileName != "" {
		target = filepath.Join(res.Dst, fileName)
	}

	return os.ReadFile(target) //nolint:wrapcheck
}

// splitFileNameFromGetterURL splits a go-getter URL with a sub-path into the URL of the
// containing directory and the file name. A ref query is kept on the directory URL.
func splitFileNameFromGetterURL(url string) (string, string, error) {
	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}

	last, ref, _ := strings.Cut(parts[len(parts)-1], goGetterRefSeparator)

	last = strings.TrimSuffix(last, "/")
	if last == "" || last == "." {
		return "", "", fmt.Errorf("%w: no file name in %s", ErrInvalidURL, url)
	}

	dir, fileName := filepath.Split(filepath.FromSlash(last))
	dir = strings.TrimSuffix(filepath.ToSlash(dir), "/")

	if dir == "" {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	src := strings.Join(parts, goGetterPathSeparator)
	if ref != "" {
		src += goGetterRefSeparator + ref
	}

	return src, fileName, nil
}
