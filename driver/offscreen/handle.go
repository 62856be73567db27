// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/glfwwindow/driver/desktop"
	"cogentcore.org/glfwwindow/window"
)

// Handle is the offscreen implementation of [desktop.Handle].
type Handle struct {
	b *Backend

	title string

	// size is in screen coordinates
	size window.Size

	shouldClose bool
	destroyed   bool
	keyCallback desktop.KeyCallback

	// pending are the events to deliver on the next poll
	pending []func()

	// Swaps is the number of buffer swaps.
	Swaps int
}

var _ desktop.Handle = &Handle{}

func (h *Handle) MakeContextCurrent() error {
	if h.b.FailContext {
		return errors.New("offscreen: context could not be made current")
	}
	h.b.current = h
	return nil
}

func (h *Handle) FramebufferSize() (width, height int) {
	s := h.b.scale()
	return int(h.size.Width) * s, int(h.size.Height) * s
}

func (h *Handle) Size() (width, height int) {
	return int(h.size.Width), int(h.size.Height)
}

func (h *Handle) ShouldClose() bool {
	return h.shouldClose
}

func (h *Handle) SetShouldClose(v bool) {
	h.shouldClose = v
}

// Title returns the current title of the window.
func (h *Handle) Title() string {
	return h.title
}

func (h *Handle) SetTitle(title string) {
	h.title = title
}

func (h *Handle) SwapBuffers() {
	h.Swaps++
}

func (h *Handle) SetKeyCallback(f desktop.KeyCallback) {
	h.keyCallback = f
}

// Destroy releases the handle. Destroying a handle twice is a bug in
// the caller and panics.
func (h *Handle) Destroy() {
	if h.destroyed {
		panic("offscreen: handle destroyed twice")
	}
	h.destroyed = true
	h.pending = nil
	h.keyCallback = nil
	if h.b.current == h {
		h.b.current = nil
	}
	h.b.Destroyed++
}

// IsDestroyed returns whether [Handle.Destroy] has been called.
func (h *Handle) IsDestroyed() bool {
	return h.destroyed
}

// PressKey queues a press and a release of the given key.
func (h *Handle) PressKey(key desktop.Key) {
	h.Key(key, desktop.Press)
	h.Key(key, desktop.Release)
}

// Key queues a single key event.
func (h *Handle) Key(key desktop.Key, action desktop.Action) {
	h.queue(func() {
		if h.keyCallback != nil {
			h.keyCallback(key, action)
		}
	})
}

// Resize queues a change of the window size, in screen coordinates.
func (h *Handle) Resize(size window.Size) {
	h.queue(func() {
		h.size = size
	})
}

// RequestClose queues a close request, as sent by a window manager
// when the user clicks the close button.
func (h *Handle) RequestClose() {
	h.queue(func() {
		h.shouldClose = true
	})
}

func (h *Handle) queue(f func()) {
	if h.destroyed {
		return
	}
	h.pending = append(h.pending, f)
}

func (h *Handle) deliver() {
	evs := h.pending
	h.pending = nil
	for _, f := range evs {
		if h.destroyed {
			return
		}
		f()
	}
}
