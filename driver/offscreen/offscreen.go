// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless [desktop.Backend] that keeps
// windows in memory. It is used for testing and for builds without a
// display, and can simulate the failures of a real windowing library.
//
// Simulated input and resizes are queued on a [Handle] and delivered on
// the next [Backend.PollEvents], as a real library delivers them.
package offscreen

import (
	"unsafe"

	"cogentcore.org/glfwwindow/driver/desktop"
	"cogentcore.org/glfwwindow/glapi"
	"cogentcore.org/glfwwindow/window"
)

// Backend is the offscreen implementation of [desktop.Backend].
type Backend struct {

	// NoDisplay makes every window creation fail with [window.ErrNoDisplay].
	NoDisplay bool

	// MaxVersion is the newest graphics-API version contexts can be created for.
	MaxVersion glapi.Version

	// FailContext makes making a context current fail.
	FailContext bool

	// Scale is the number of framebuffer pixels per screen coordinate;
	// 0 is treated as 1.
	Scale int

	// Symbols are the graphics-API functions known to [Backend.ProcAddress].
	Symbols map[string]unsafe.Pointer

	// Interval is the last swap interval set.
	Interval int

	// Created and Destroyed count handle creations and destructions.
	Created, Destroyed int

	// LastHints are the hints of the most recent window creation attempt.
	LastHints desktop.Hints

	initialized bool
	current     *Handle
	handles     []*Handle
}

var _ desktop.Backend = &Backend{}

// New returns a new [Backend] that supports every graphics-API version.
func New() *Backend {
	return &Backend{
		MaxVersion: glapi.V4_5,
		Symbols:    map[string]unsafe.Pointer{},
	}
}

func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Terminate destroys any remaining windows, as GLFW does.
func (b *Backend) Terminate() {
	for _, h := range b.handles {
		if !h.destroyed {
			h.Destroy()
		}
	}
	b.handles = nil
	b.initialized = false
}

// IsInitialized returns whether the backend is between Init and Terminate.
func (b *Backend) IsInitialized() bool {
	return b.initialized
}

func (b *Backend) CreateWindow(h desktop.Hints) (desktop.Handle, error) {
	b.LastHints = h
	if !b.initialized {
		return nil, window.ErrLibraryNotInitialized
	}
	if b.NoDisplay {
		return nil, window.ErrNoDisplay
	}
	maxMajor, maxMinor := b.MaxVersion.MajorMinor()
	if h.Major > maxMajor || (h.Major == maxMajor && h.Minor > maxMinor) {
		return nil, window.ErrUnsupportedVersion
	}
	hd := &Handle{
		b:     b,
		title: h.Title,
		size:  window.Size{Width: uint32(h.Width), Height: uint32(h.Height)},
	}
	b.handles = append(b.handles, hd)
	b.Created++
	return hd, nil
}

func (b *Backend) SwapInterval(interval int) {
	b.Interval = interval
}

// ProcAddress returns the symbol from [Backend.Symbols], or nil if there
// is no current context.
func (b *Backend) ProcAddress(name string) unsafe.Pointer {
	if b.current == nil {
		return nil
	}
	return b.Symbols[name]
}

// PollEvents delivers the events queued on every live handle.
func (b *Backend) PollEvents() {
	for _, h := range b.handles {
		h.deliver()
	}
}

// Current returns the handle whose context is current, if any.
func (b *Backend) Current() *Handle {
	return b.current
}

// Live returns the number of handles not yet destroyed.
func (b *Backend) Live() int {
	return b.Created - b.Destroyed
}

func (b *Backend) scale() int {
	if b.Scale <= 0 {
		return 1
	}
	return b.Scale
}
