// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glfwwindow/glapi"
	"cogentcore.org/glfwwindow/window"
)

// Window is the [window.Window] implementation for the desktop platform.
// It owns exactly one native [Handle], which is destroyed when the window
// is closed. A Window is either live or closed; once closed, queries
// return zero values and setters do nothing.
type Window struct {
	lib    *Library
	handle Handle

	// title is the last title set, since the native handle
	// cannot be asked for it
	title string

	exitOnEsc bool
	closed    bool
}

var _ window.Window = &Window{}

// ErrHandleOwned is the cause of the error returned by [FromHandle] for a
// handle that already belongs to an open window.
var ErrHandleOwned = errors.New("desktop: handle already belongs to an open window")

// NewWindow creates a window and a context for the given graphics-API
// version, and makes the context current on the calling thread. It fails
// with a [window.InitializationError] if the size is not positive, the
// library is not initialized, or the native window cannot be created;
// nothing is left allocated in that case.
//
// The settings are copied; the caller keeps ownership of them.
func (l *Library) NewWindow(api glapi.Version, s window.Settings) (w *Window, err error) {
	if err := l.usable("creating window"); err != nil {
		return nil, err
	}
	if !s.Size.Valid() {
		return nil, window.NewInitializationError("creating "+s.Size.String()+" window", window.ErrInvalidSize)
	}
	if !api.IsValid() {
		return nil, window.NewInitializationError("creating OpenGL "+api.String()+" context", window.ErrUnsupportedVersion)
	}

	h, err := l.backend.CreateWindow(NewHints(api, s))
	if err != nil {
		return nil, initError("creating window", err)
	}
	if h == nil {
		return nil, window.NewInitializationError("creating window", errors.New("backend returned no window"))
	}
	defer func() {
		if err != nil {
			h.Destroy()
		}
	}()

	if err = h.MakeContextCurrent(); err != nil {
		return nil, initError("making OpenGL "+api.String()+" context current", err)
	}
	if s.Vsync {
		l.backend.SwapInterval(1)
	} else {
		l.backend.SwapInterval(0)
	}

	w = l.adopt(h, s.Title, s.ExitOnEsc)
	slog.Debug("created window", "title", s.Title, "size", s.Size, "api", api, "fullscreen", s.Fullscreen, "samples", s.Samples)
	return w, nil
}

// FromHandle returns a [Window] that takes ownership of an already created
// native handle, for callers that need to configure the handle themselves.
// The handle's context is expected to be current already, and title should
// be the caption the handle was created with, since it cannot be queried.
// A handle that already belongs to an open window cannot be adopted again.
func FromHandle(l *Library, h Handle, title string, exitOnEsc bool) (*Window, error) {
	if err := l.usable("adopting window"); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, window.NewInitializationError("adopting window", errors.New("nil handle"))
	}
	if _, ok := l.owned[handleID(h)]; ok {
		return nil, window.NewInitializationError("adopting window", ErrHandleOwned)
	}
	return l.adopt(h, title, exitOnEsc), nil
}

func (l *Library) adopt(h Handle, title string, exitOnEsc bool) *Window {
	w := &Window{
		lib:       l,
		handle:    h,
		title:     title,
		exitOnEsc: exitOnEsc,
	}
	h.SetKeyCallback(w.keyEvent)
	if l.owned == nil {
		l.owned = map[any]struct{}{}
	}
	l.owned[handleID(h)] = struct{}{}
	return w
}

func (w *Window) keyEvent(key Key, action Action) {
	if w.exitOnEsc && key == KeyEscape && action == Press {
		w.handle.SetShouldClose(true)
	}
}

// Native returns the native handle, or nil once the window is closed.
func (w *Window) Native() Handle {
	if w.IsClosed() {
		return nil
	}
	return w.handle
}

// IsClosed returns whether [Window.Close] has been called.
func (w *Window) IsClosed() bool {
	return w == nil || w.closed
}

func (w *Window) Size() window.Size {
	if w.IsClosed() {
		return window.Size{}
	}
	return toSize(w.handle.FramebufferSize())
}

func (w *Window) WindowSize() window.Size {
	if w.IsClosed() {
		return window.Size{}
	}
	return toSize(w.handle.Size())
}

// ProcAddress forwards to the windowing library's symbol resolver.
// It returns nil for unknown or empty names and after the window is closed.
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	if name == "" || w.IsClosed() || w.lib.IsTerminated() {
		return nil
	}
	return w.lib.backend.ProcAddress(name)
}

func (w *Window) ShouldClose() bool {
	if w.IsClosed() {
		return true
	}
	return w.handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	if w.IsClosed() {
		return
	}
	w.handle.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	if w.IsClosed() {
		return
	}
	w.handle.SwapBuffers()
}

// Title returns the last title set, either at creation or through
// [Window.SetTitle]; the native handle is not queried.
func (w *Window) Title() string {
	if w == nil {
		return ""
	}
	return w.title
}

func (w *Window) SetTitle(title string) {
	if w.IsClosed() {
		return
	}
	w.title = title
	w.handle.SetTitle(title)
}

// Close destroys the native window and context. Only the first call has
// any effect.
func (w *Window) Close() {
	if w.IsClosed() {
		return
	}
	w.closed = true
	h := w.handle
	w.handle = nil
	delete(w.lib.owned, handleID(h))
	h.SetKeyCallback(nil)
	h.Destroy()
	slog.Debug("closed window", "title", w.title)
}

func toSize(width, height int) window.Size {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return window.Size{Width: uint32(width), Height: uint32(height)}
}
