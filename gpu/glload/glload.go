// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

// Package glload loads OpenGL entry points for a renderer through a
// [window.ProcResolver], so that the renderer does not depend on any
// particular windowing library.
package glload

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/glfwwindow/window"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Load loads the OpenGL 3.2 core entry points from the given resolver.
// The context the resolver belongs to must be current on the calling thread.
func Load(r window.ProcResolver) error {
	if r == nil {
		return fmt.Errorf("glload: nil resolver")
	}
	if err := gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		return r.ProcAddress(name)
	}); err != nil {
		return fmt.Errorf("glload: loading OpenGL functions: %w", err)
	}
	slog.Debug("loaded OpenGL", "version", Version(), "renderer", Renderer())
	return nil
}

// Version returns the version string of the current context.
// It must only be called after [Load].
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer returns the renderer string of the current context.
// It must only be called after [Load].
func Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

// Clear clears the color buffer of the current framebuffer to the given color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport sets the viewport to cover a framebuffer of the given size.
func Viewport(size window.Size) {
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
}
