// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package spinner draws a loading animation on a terminal while commands run.
// Each frame is written as "\r<frame>", so the next line of output overwrites it.
package spinner

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"golang.org/x/term"
)

// Spinner animates frames on a writer until stopped.
type Spinner struct {
	w        io.Writer
	lock     sync.Locker
	frames   []string
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	start    sync.Once
	halt     sync.Once
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithLocker makes the spinner hold l while writing a frame, so frames never land
// in the middle of a line written by another holder of l.
func WithLocker(l sync.Locker) Option {
	return func(s *Spinner) {
		s.lock = l
	}
}

// WithStyle replaces the frames and frame rate.
func WithStyle(style spinner.Spinner) Option {
	return func(s *Spinner) {
		s.frames = style.Frames
		s.interval = style.FPS
	}
}

// New creates a stopped spinner writing to w.
func New(w io.Writer, opts ...Option) *Spinner {
	s := &Spinner{
		w:        w,
		lock:     &sync.Mutex{},
		frames:   spinner.MiniDot.Frames,
		interval: spinner.MiniDot.FPS,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsTerminal reports whether f is attached to a terminal, the only place a spinner belongs.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Start begins the animation in a new goroutine. Calling it again has no effect.
func (s *Spinner) Start() {
	s.start.Do(func() {
		go s.run()
	})
}

// Stop ends the animation and clears the last frame. It is safe to call more than once,
// and before Start.
func (s *Spinner) Stop() {
	s.halt.Do(func() {
		close(s.stop)
	})

	s.start.Do(func() {
		close(s.done)
	})

	<-s.done
}

func (s *Spinner) run() {
	defer close(s.done)

	if len(s.frames) == 0 || s.interval <= 0 {
		<-s.stop
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i = (i + 1) % len(s.frames) {
		s.write("\r" + s.frames[i])

		select {
		case <-s.stop:
			s.write("\r \r")
			return
		case <-ticker.C:
		}
	}
}

func (s *Spinner) write(str string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, _ = io.WriteString(s.w, str)
}
