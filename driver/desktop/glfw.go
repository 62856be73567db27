// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package desktop

import (
	"fmt"
	"runtime"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glfwwindow/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW must be used from the main thread
	runtime.LockOSThread()
}

// Init initializes GLFW and returns the resulting [Library].
// IMPORTANT: must be called on the main initial thread!
func Init() (*Library, error) {
	return InitWith(GLFW())
}

// GLFW returns the [Backend] for GLFW.
func GLFW() Backend {
	return glfwBackend{}
}

type glfwBackend struct{}

func (glfwBackend) Init() error {
	return glfw.Init()
}

func (glfwBackend) Terminate() {
	glfw.Terminate()
}

func (glfwBackend) CreateWindow(h Hints) (hd Handle, err error) {
	defer catch(&err)
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, h.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, h.Minor)
	if h.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Samples, h.Samples)
	glfw.WindowHint(glfw.SRGBCapable, glfwBool(h.SRGB))
	glfw.WindowHint(glfw.Resizable, glfwBool(h.Resizable))
	glfw.WindowHint(glfw.Decorated, glfwBool(h.Decorated))

	var mon *glfw.Monitor
	if h.Fullscreen {
		mon = glfw.GetPrimaryMonitor()
		if mon == nil {
			return nil, window.ErrNoDisplay
		}
	}
	return createdHandle(glfw.CreateWindow(h.Width, h.Height, h.Title, mon, nil))
}

// createdHandle returns the handle for the result of glfw.CreateWindow,
// which can be a nil window without an error when GLFW only logs a
// platform error.
func createdHandle(gw *glfw.Window, err error) (Handle, error) {
	if err != nil {
		err = glfwError(err)
	}
	if gw == nil {
		if err == nil {
			return nil, window.ErrNoDisplay
		}
		if !errors.Is(err, window.ErrNoDisplay) && !errors.Is(err, window.ErrUnsupportedVersion) {
			err = fmt.Errorf("%w: %w", window.ErrNoDisplay, err)
		}
		return nil, err
	}
	if err != nil {
		gw.Destroy()
		return nil, err
	}
	return NewGLFWHandle(gw), nil
}

func (glfwBackend) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (glfwBackend) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (glfwBackend) PollEvents() {
	glfw.PollEvents()
}

// NewGLFWHandle returns the [Handle] for a window created directly
// with GLFW, for use with [FromHandle].
func NewGLFWHandle(gw *glfw.Window) Handle {
	if gw == nil {
		return nil
	}
	return &glfwHandle{w: gw}
}

// GLFWWindow returns the GLFW window of a handle made by the GLFW
// backend, and nil for any other handle.
func GLFWWindow(h Handle) *glfw.Window {
	if gh, ok := h.(*glfwHandle); ok {
		return gh.w
	}
	return nil
}

type glfwHandle struct {
	w *glfw.Window
}

// ID returns the GLFW window, so that two handles for the same
// window are recognized as one.
func (h *glfwHandle) ID() any {
	return h.w
}

func (h *glfwHandle) MakeContextCurrent() (err error) {
	defer catch(&err)
	h.w.MakeContextCurrent()
	return nil
}

func (h *glfwHandle) FramebufferSize() (width, height int) {
	return h.w.GetFramebufferSize()
}

func (h *glfwHandle) Size() (width, height int) {
	return h.w.GetSize()
}

func (h *glfwHandle) ShouldClose() bool {
	return h.w.ShouldClose()
}

func (h *glfwHandle) SetShouldClose(v bool) {
	h.w.SetShouldClose(v)
}

func (h *glfwHandle) SetTitle(title string) {
	h.w.SetTitle(title)
}

func (h *glfwHandle) SwapBuffers() {
	h.w.SwapBuffers()
}

func (h *glfwHandle) SetKeyCallback(f KeyCallback) {
	if f == nil {
		h.w.SetKeyCallback(nil)
		return
	}
	h.w.SetKeyCallback(func(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		f(glfwKey(ky), glfwAction(action))
	})
}

func (h *glfwHandle) Destroy() {
	h.w.Destroy()
}

func glfwKey(ky glfw.Key) Key {
	if ky == glfw.KeyEscape {
		return KeyEscape
	}
	return KeyUnknown
}

func glfwAction(action glfw.Action) Action {
	switch action {
	case glfw.Press:
		return Press
	case glfw.Repeat:
		return Repeat
	default:
		return Release
	}
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// glfwError adds the matching [window] cause to a GLFW error.
func glfwError(err error) error {
	var ge *glfw.Error
	if !errors.As(err, &ge) {
		return err
	}
	switch ge.Code {
	case glfw.VersionUnavailable, glfw.FormatUnavailable:
		return fmt.Errorf("%w: %w", window.ErrUnsupportedVersion, err)
	case glfw.APIUnavailable:
		return fmt.Errorf("%w: %w", window.ErrNoDisplay, err)
	}
	return err
}

// catch turns a panic raised by GLFW for an unexpected error into
// an error returned through err.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch x := r.(type) {
	case error:
		*err = glfwError(x)
	default:
		*err = fmt.Errorf("glfw: %v", x)
	}
}
