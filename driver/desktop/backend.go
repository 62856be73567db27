// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"unsafe"

	"cogentcore.org/glfwwindow/glapi"
	"cogentcore.org/glfwwindow/window"
)

// Backend is the process-wide surface of a native windowing library.
// The GLFW implementation is returned by [GLFW]; headless
// implementations are used for testing.
type Backend interface {

	// Init initializes the library's global state.
	Init() error

	// Terminate releases the library's global state, destroying any
	// remaining windows.
	Terminate()

	// CreateWindow creates a window and context with the given hints.
	// The new context is not current.
	CreateWindow(h Hints) (Handle, error)

	// SwapInterval sets the number of screen updates to wait for
	// between buffer swaps on the current context.
	SwapInterval(interval int)

	// ProcAddress returns the address of the named graphics-API
	// function for the current context, or nil if it is unknown.
	ProcAddress(name string) unsafe.Pointer

	// PollEvents processes pending events, calling any callbacks.
	PollEvents()
}

// Handle is a single native window with its graphics context.
// Handles are compared by identity; a handle type whose values can
// refer to the same native window should also have an ID() any method
// returning a comparable value identifying that window.
type Handle interface {
	MakeContextCurrent() error

	// FramebufferSize returns the size of the drawable surface in pixels.
	FramebufferSize() (width, height int)

	// Size returns the window size in screen coordinates.
	Size() (width, height int)

	ShouldClose() bool
	SetShouldClose(v bool)
	SetTitle(title string)
	SwapBuffers()

	// SetKeyCallback sets the function called for key events during
	// [Backend.PollEvents]. A nil function removes it.
	SetKeyCallback(f KeyCallback)

	// Destroy releases the window and context. It must be called
	// exactly once.
	Destroy()
}

// Key is a physical key, as far as the adapter needs to know about it.
type Key int32

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Action is what happened to a key.
type Action int32

const (
	Release Action = iota
	Press
	Repeat
)

// KeyCallback is called for every key event delivered to a window.
type KeyCallback func(key Key, action Action)

// Hints are the native window creation parameters derived from a
// graphics-API version and [window.Settings].
type Hints struct {
	Title         string
	Width, Height int

	// Major and Minor are the requested context version.
	Major, Minor int

	// CoreProfile requests a forward compatible core profile context.
	CoreProfile bool

	Samples    int
	SRGB       bool
	Resizable  bool
	Decorated  bool
	Fullscreen bool
}

// NewHints returns the hints for creating a window for the given
// version and settings.
func NewHints(api glapi.Version, s window.Settings) Hints {
	major, minor := api.MajorMinor()
	return Hints{
		Title:       s.Title,
		Width:       int(s.Size.Width),
		Height:      int(s.Size.Height),
		Major:       major,
		Minor:       minor,
		CoreProfile: api.IsCoreProfile(),
		Samples:     int(s.Samples),
		SRGB:        s.SRGB,
		Resizable:   s.Resizable,
		Decorated:   s.Decorated,
		Fullscreen:  s.Fullscreen,
	}
}
