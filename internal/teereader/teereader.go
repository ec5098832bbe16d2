// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package teereader

import (
	"bytes"
	"io"
	"sync"
)

// CaptureReader wraps an io.Reader and records all data read from it.
// It is safe to query while another goroutine is reading.
type CaptureReader struct {
	reader   io.Reader
	captured bytes.Buffer
	lastLine []byte
	partial  []byte
	mu       sync.RWMutex
}

// New creates a CaptureReader reading from r.
func New(r io.Reader) *CaptureReader {
	return &CaptureReader{
		reader: r,
	}
}

// Read implements io.Reader.
func (c *CaptureReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	if n > 0 {
		c.mu.Lock()
		c.captured.Write(p[:n])
		c.track(p[:n])
		c.mu.Unlock()
	}

	return n, err //nolint:wrapcheck
}

// track updates the last line. Must be called with the write lock held.
func (c *CaptureReader) track(data []byte) {
	c.partial = append(c.partial, data...)

	idx := bytes.LastIndexByte(c.partial, '\n')
	if idx < 0 {
		return
	}

	complete := c.partial[:idx]
	if prev := bytes.LastIndexByte(complete, '\n'); prev >= 0 {
		complete = complete[prev+1:]
	}

	c.lastLine = bytes.TrimSuffix(bytes.Clone(complete), []byte("\r"))
	c.partial = bytes.Clone(c.partial[idx+1:])
}

// Bytes returns a copy of all data read so far.
func (c *CaptureReader) Bytes() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return bytes.Clone(c.captured.Bytes())
}

// LastLine returns the most recent line of output. Trailing data without a
// newline counts as a line, so the final line of a stream is never lost.
func (c *CaptureReader) LastLine() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.partial) > 0 {
		return string(c.partial)
	}

	return string(c.lastLine)
}
