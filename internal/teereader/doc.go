// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package teereader provides a reader that keeps a copy of everything read through it,
// along with the most recent line, so a stream can be forwarded line by line and still
// be available in full once the producer has finished.
package teereader
