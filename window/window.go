// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window defines the engine-level view of a native window with a
// graphics context: the settings used to create it, the capability used by
// a renderer to load graphics-API entry points, and the operations exposed
// to an event loop.
//
// A Window is bound to the thread that created it. None of its methods may
// be called concurrently, and it must not be shared between goroutines
// that are not locked to that thread.
package window

import "unsafe"

// ProcResolver resolves graphics-API entry points by symbol name.
// It returns nil for symbols that are unknown; that is not an error.
type ProcResolver interface {
	ProcAddress(name string) unsafe.Pointer
}

// ProcFunc adapts a plain function to a [ProcResolver].
type ProcFunc func(name string) unsafe.Pointer

func (f ProcFunc) ProcAddress(name string) unsafe.Pointer {
	if f == nil {
		return nil
	}
	return f(name)
}

// Window is a live native window and its graphics context.
type Window interface {
	ProcResolver

	// Size returns the framebuffer size in pixels. It reflects the
	// latest size known to the windowing library, which can lag an
	// asynchronous resize by up to one event poll.
	Size() Size

	// WindowSize returns the window size in screen coordinates, which
	// differs from [Window.Size] on high density displays.
	WindowSize() Size

	// ShouldClose returns whether closing the window has been requested.
	ShouldClose() bool

	// SetShouldClose sets or clears the close request.
	SetShouldClose(v bool)

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Title returns the current window caption.
	Title() string

	// SetTitle changes the window caption.
	SetTitle(title string)

	// Close releases the native window and context. It is safe to
	// call more than once.
	Close()
}
