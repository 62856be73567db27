// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop adapts a native windowing library (GLFW) to the
// [window.Window] abstraction.
//
// The library's global state is represented by a [Library], which must be
// initialized before any window is created and terminated only after every
// window has been closed. All calls must be made from the thread that
// initialized the library; on the GLFW build this is the main thread, which
// the package locks in its init function.
package desktop

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glfwwindow/window"
)

// ErrWindowsOpen is returned by [Library.Terminate] while windows
// created from the library are still open.
var ErrWindowsOpen = errors.New("desktop: windows are still open")

// Library is an initialized windowing library. It is the owner of the
// library's process-wide state, which no [Window] owns.
type Library struct {
	backend Backend

	// owned are the identities of the handles of open windows
	owned map[any]struct{}

	terminated bool
}

// InitWith initializes the given backend and returns the resulting [Library].
func InitWith(b Backend) (*Library, error) {
	if b == nil {
		return nil, errors.New("desktop: nil backend")
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("desktop: initializing windowing library: %w", err)
	}
	slog.Debug("initialized windowing library", "backend", fmt.Sprintf("%T", b))
	return &Library{backend: b, owned: map[any]struct{}{}}, nil
}

// Terminate releases the library's global state. It fails with
// [ErrWindowsOpen] if any window is still open, in which case nothing
// is released. Terminating twice has no effect.
func (l *Library) Terminate() error {
	if l == nil || l.terminated {
		return nil
	}
	if n := len(l.owned); n > 0 {
		return fmt.Errorf("%w: %d open", ErrWindowsOpen, n)
	}
	l.terminated = true
	l.backend.Terminate()
	slog.Debug("terminated windowing library")
	return nil
}

// IsTerminated returns whether [Library.Terminate] has completed.
func (l *Library) IsTerminated() bool {
	return l == nil || l.terminated
}

// Live returns the number of open windows.
func (l *Library) Live() int {
	if l == nil {
		return 0
	}
	return len(l.owned)
}

// PollEvents processes pending native events, which updates window
// sizes and delivers key presses. It does not block.
func (l *Library) PollEvents() {
	if l.IsTerminated() {
		return
	}
	l.backend.PollEvents()
}

// usable returns an [window.InitializationError] if no window can be
// created from the library.
func (l *Library) usable(reason string) error {
	if l.IsTerminated() {
		return window.NewInitializationError(reason, window.ErrLibraryNotInitialized)
	}
	return nil
}

// handleID returns the identity of a handle, which is the result of its
// ID method if it has one and the handle itself otherwise.
func handleID(h Handle) any {
	if id, ok := h.(interface{ ID() any }); ok {
		return id.ID()
	}
	return h
}

// initError returns err as an [window.InitializationError], wrapping it
// if it is not one already.
func initError(reason string, err error) error {
	if window.IsInitializationError(err) {
		return err
	}
	return window.NewInitializationError(reason, err)
}
