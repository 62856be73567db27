// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop_test

import (
	"testing"
	"unsafe"

	. "cogentcore.org/glfwwindow/driver/desktop"
	"cogentcore.org/glfwwindow/driver/offscreen"
	"cogentcore.org/glfwwindow/glapi"
	"cogentcore.org/glfwwindow/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibrary(t *testing.T) (*Library, *offscreen.Backend) {
	t.Helper()
	b := offscreen.New()
	lib, err := InitWith(b)
	require.NoError(t, err)
	return lib, b
}

func testSettings() window.Settings {
	s := window.NewSettings("t", window.Size{Width: 640, Height: 480})
	s.SetExitOnEsc(true).SetSamples(4)
	return s
}

func TestNewWindow(t *testing.T) {
	lib, b := newLibrary(t)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)

	assert.False(t, w.IsClosed())
	assert.Equal(t, window.Size{Width: 640, Height: 480}, w.Size())
	assert.Equal(t, window.Size{Width: 640, Height: 480}, w.WindowSize())
	assert.Equal(t, "t", w.Title())
	assert.False(t, w.ShouldClose())
	assert.Equal(t, 1, lib.Live())
	assert.Same(t, b.Current(), w.Native())
	assert.Equal(t, 0, b.Interval)

	assert.Equal(t, Hints{
		Title:       "t",
		Width:       640,
		Height:      480,
		Major:       3,
		Minor:       2,
		CoreProfile: true,
		Samples:     4,
		SRGB:        true,
		Resizable:   true,
		Decorated:   true,
	}, b.LastHints)

	w.Close()
	assert.Equal(t, 0, lib.Live())
	assert.Equal(t, 0, b.Live())
	require.NoError(t, lib.Terminate())
}

func TestNewWindowVsyncFullscreen(t *testing.T) {
	lib, b := newLibrary(t)
	s := testSettings()
	s.SetVsync(true).SetFullscreen(true)
	w, err := lib.NewWindow(glapi.V2_1, s)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, 1, b.Interval)
	assert.True(t, b.LastHints.Fullscreen)
	assert.False(t, b.LastHints.CoreProfile)
	assert.Equal(t, 2, b.LastHints.Major)
	assert.Equal(t, 1, b.LastHints.Minor)
}

func TestNewWindowDoesNotChangeSettings(t *testing.T) {
	lib, _ := newLibrary(t)
	s := testSettings()
	before := s
	w, err := lib.NewWindow(glapi.Default, s)
	require.NoError(t, err)
	w.SetTitle("changed")
	w.Close()
	assert.Equal(t, before, s)
}

func TestNewWindowInvalidSize(t *testing.T) {
	lib, b := newLibrary(t)
	for _, sz := range []window.Size{{}, {Width: 640}, {Height: 480}} {
		s := testSettings()
		s.SetSize(sz)
		w, err := lib.NewWindow(glapi.V3_2, s)
		assert.Nil(t, w)
		assert.True(t, window.IsInitializationError(err), sz)
		assert.ErrorIs(t, err, window.ErrInvalidSize)
	}
	assert.Equal(t, 0, b.Created)
}

func TestNewWindowFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *offscreen.Backend)
		api   glapi.Version
		cause error
	}{
		{"no display", func(b *offscreen.Backend) { b.NoDisplay = true }, glapi.V3_2, window.ErrNoDisplay},
		{"unsupported version", func(b *offscreen.Backend) { b.MaxVersion = glapi.V3_1 }, glapi.V3_2, window.ErrUnsupportedVersion},
		{"invalid version", func(b *offscreen.Backend) {}, glapi.Version(100), window.ErrUnsupportedVersion},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lib, b := newLibrary(t)
			test.setup(b)
			w, err := lib.NewWindow(test.api, testSettings())
			assert.Nil(t, w)
			assert.True(t, window.IsInitializationError(err))
			assert.ErrorIs(t, err, test.cause)
			assert.Equal(t, 0, b.Live())
			assert.Equal(t, 0, lib.Live())
		})
	}
}

func TestNewWindowContextFailureReleasesHandle(t *testing.T) {
	lib, b := newLibrary(t)
	b.FailContext = true
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	assert.Nil(t, w)
	assert.True(t, window.IsInitializationError(err))
	assert.Equal(t, 1, b.Created)
	assert.Equal(t, 1, b.Destroyed)
	assert.Equal(t, 0, lib.Live())
	assert.NoError(t, lib.Terminate())
}

func TestNewWindowTerminatedLibrary(t *testing.T) {
	lib, _ := newLibrary(t)
	require.NoError(t, lib.Terminate())
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	assert.Nil(t, w)
	assert.ErrorIs(t, err, window.ErrLibraryNotInitialized)

	var nilLib *Library
	_, err = nilLib.NewWindow(glapi.V3_2, testSettings())
	assert.ErrorIs(t, err, window.ErrLibraryNotInitialized)
}

func TestProcAddress(t *testing.T) {
	lib, b := newLibrary(t)
	var fn int
	b.Symbols["glClear"] = unsafe.Pointer(&fn)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)

	assert.Equal(t, unsafe.Pointer(&fn), w.ProcAddress("glClear"))
	assert.Nil(t, w.ProcAddress("glDoesNotExist"))
	assert.Nil(t, w.ProcAddress(""))

	w.Close()
	assert.Nil(t, w.ProcAddress("glClear"))
}

func TestRequestClose(t *testing.T) {
	lib, _ := newLibrary(t)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)
	defer w.Close()

	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())
	w.SetShouldClose(false)
	assert.False(t, w.ShouldClose())
	w.SwapBuffers()
	w.SetShouldClose(true)
	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())
}

func TestExitOnEsc(t *testing.T) {
	lib, _ := newLibrary(t)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)
	defer w.Close()

	h := w.Native().(*offscreen.Handle)
	h.PressKey(KeyEscape)
	assert.False(t, w.ShouldClose(), "events are delivered on poll")
	lib.PollEvents()
	assert.True(t, w.ShouldClose())
}

func TestEscWithoutExitOnEsc(t *testing.T) {
	lib, _ := newLibrary(t)
	s := testSettings()
	s.SetExitOnEsc(false)
	w, err := lib.NewWindow(glapi.V3_2, s)
	require.NoError(t, err)
	defer w.Close()

	h := w.Native().(*offscreen.Handle)
	h.PressKey(KeyEscape)
	h.Key(KeyUnknown, Press)
	lib.PollEvents()
	assert.False(t, w.ShouldClose())

	h.RequestClose()
	lib.PollEvents()
	assert.True(t, w.ShouldClose())
}

func TestSizeAfterResize(t *testing.T) {
	lib, b := newLibrary(t)
	b.Scale = 2
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, window.Size{Width: 1280, Height: 960}, w.Size())
	assert.Equal(t, window.Size{Width: 640, Height: 480}, w.WindowSize())

	w.Native().(*offscreen.Handle).Resize(window.Size{Width: 800, Height: 600})
	assert.Equal(t, window.Size{Width: 1280, Height: 960}, w.Size(), "size lags until the next poll")
	lib.PollEvents()
	assert.Equal(t, window.Size{Width: 1600, Height: 1200}, w.Size())
}

func TestSetTitle(t *testing.T) {
	lib, _ := newLibrary(t)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)

	h := w.Native().(*offscreen.Handle)
	w.SetTitle("renamed")
	assert.Equal(t, "renamed", w.Title())
	assert.Equal(t, "renamed", h.Title())

	w.Close()
	w.SetTitle("after close")
	assert.Equal(t, "renamed", w.Title())
}

func TestCloseIdempotent(t *testing.T) {
	lib, b := newLibrary(t)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)
	h := w.Native().(*offscreen.Handle)

	w.Close()
	assert.True(t, w.IsClosed())
	assert.True(t, h.IsDestroyed())
	assert.NotPanics(t, w.Close)
	assert.Equal(t, 1, b.Destroyed)
	assert.Equal(t, 0, lib.Live())

	assert.Nil(t, w.Native())
	assert.Equal(t, window.Size{}, w.Size())
	assert.Equal(t, window.Size{}, w.WindowSize())
	assert.True(t, w.ShouldClose())
	w.SetShouldClose(false)
	assert.True(t, w.ShouldClose())
	assert.NotPanics(t, w.SwapBuffers)
	assert.Nil(t, b.Current())

	var nilWin *Window
	assert.True(t, nilWin.IsClosed())
	assert.NotPanics(t, nilWin.Close)
}

func TestTerminateWithOpenWindows(t *testing.T) {
	lib, b := newLibrary(t)
	w1, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)
	w2, err := lib.NewWindow(glapi.V3_3, testSettings())
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Live())

	err = lib.Terminate()
	assert.ErrorIs(t, err, ErrWindowsOpen)
	assert.False(t, lib.IsTerminated())
	assert.True(t, b.IsInitialized())

	w1.Close()
	w2.Close()
	require.NoError(t, lib.Terminate())
	assert.True(t, lib.IsTerminated())
	assert.False(t, b.IsInitialized())
	assert.NoError(t, lib.Terminate())
	assert.NotPanics(t, lib.PollEvents)
}

func TestFromHandle(t *testing.T) {
	lib, b := newLibrary(t)
	h, err := b.CreateWindow(Hints{Title: "pieces", Width: 320, Height: 240, Major: 3, Minor: 2})
	require.NoError(t, err)
	require.NoError(t, h.MakeContextCurrent())

	w, err := FromHandle(lib, h, "pieces", true)
	require.NoError(t, err)
	assert.Equal(t, window.Size{Width: 320, Height: 240}, w.Size())
	assert.Equal(t, "pieces", w.Title())
	assert.Equal(t, 1, lib.Live())

	h.(*offscreen.Handle).PressKey(KeyEscape)
	lib.PollEvents()
	assert.True(t, w.ShouldClose())

	w.Close()
	assert.Equal(t, 1, b.Destroyed)

	_, err = FromHandle(lib, nil, "", false)
	assert.True(t, window.IsInitializationError(err))
}

func TestFromHandleAlreadyOwned(t *testing.T) {
	lib, b := newLibrary(t)
	w, err := lib.NewWindow(glapi.V3_2, testSettings())
	require.NoError(t, err)

	w2, err := FromHandle(lib, w.Native(), "t", false)
	assert.Nil(t, w2)
	assert.True(t, window.IsInitializationError(err))
	assert.ErrorIs(t, err, ErrHandleOwned)
	assert.Equal(t, 1, lib.Live())

	w.Close()
	assert.NotPanics(t, w.Close)
	assert.Equal(t, 1, b.Destroyed)
	assert.Equal(t, 0, lib.Live())
	assert.NoError(t, lib.Terminate())
}

func TestInitWith(t *testing.T) {
	_, err := InitWith(nil)
	assert.Error(t, err)
}

func TestNewHints(t *testing.T) {
	s := window.NewSettings("hints", window.Size{Width: 10, Height: 20})
	s.SetSamples(8).SetSRGB(false).SetResizable(false).SetDecorated(false).SetFullscreen(true)
	assert.Equal(t, Hints{
		Title:       "hints",
		Width:       10,
		Height:      20,
		Major:       4,
		Minor:       1,
		CoreProfile: true,
		Samples:     8,
		Fullscreen:  true,
	}, NewHints(glapi.V4_1, s))
}
