// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.False(t, isRemote("ex-cm.config.json"))
	assert.False(t, isRemote("../configs/excm.yaml"))
	assert.False(t, isRemote("/etc/excm.json"))
	assert.True(t, isRemote("https://example.com/excm.json"))
	assert.True(t, isRemote("git::https://example.com/repo.git//excm.json"))
	assert.True(t, isRemote("s3::https://s3.amazonaws.com/bucket/excm.json"))
}

func TestSplitFileNameFromGetterURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantSrc  string
		wantFile string
		wantErr  bool
	}{
		{
			name:     "file at repository root",
			url:      "git::https://github.com/org/repo//excm.json",
			wantSrc:  "git::https://github.com/org/repo",
			wantFile: "excm.json",
		},
		{
			name:     "file in sub directory with ref",
			url:      "git::https://github.com/org/repo//configs/ci/excm.yaml?ref=v1.2.3",
			wantSrc:  "git::https://github.com/org/repo//configs/ci?ref=v1.2.3",
			wantFile: "excm.yaml",
		},
		{
			name:     "root file with ref",
			url:      "git::https://github.com/org/repo//excm.json?ref=main",
			wantSrc:  "git::https://github.com/org/repo?ref=main",
			wantFile: "excm.json",
		},
		{
			name:    "no sub path",
			url:     "https://example.com/excm.json",
			wantErr: true,
		},
		{
			name:    "sub path without file",
			url:     "git::https://github.com/org/repo//",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, file, err := splitFileNameFromGetterURL(tt.url)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidURL)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSrc, src)
			assert.Equal(t, tt.wantFile, file)
		})
	}
}
