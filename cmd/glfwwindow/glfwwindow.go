// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

// Command glfwwindow opens a GLFW window with an OpenGL context
// and runs an event loop until the window is closed.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/glfwwindow/driver/desktop"
	"cogentcore.org/glfwwindow/glapi"
	"cogentcore.org/glfwwindow/gpu/glload"
	"cogentcore.org/glfwwindow/window"
)

// Config is the configuration information for the glfwwindow cli.
type Config struct {

	// Title is the window caption.
	Title string `default:"GLFW Window"`

	// Width is the initial framebuffer width.
	Width uint32 `default:"640"`

	// Height is the initial framebuffer height.
	Height uint32 `default:"480"`

	// Fullscreen opens the window fullscreen on the primary display.
	Fullscreen bool

	// ExitOnEsc closes the window when Escape is pressed.
	ExitOnEsc bool `default:"true"`

	// Samples is the MSAA sample count; 0 disables multisampling.
	Samples uint8

	// Vsync synchronizes buffer swaps with the display refresh.
	Vsync bool `default:"true"`

	// OpenGL is the OpenGL version to create a context for.
	OpenGL string `default:"3.2"`

	// SettingsFile is an optional TOML window settings file. When it is
	// set, it replaces the window flags above.
	SettingsFile string

	// Frames is the number of frames to run before exiting;
	// 0 runs until the window is closed.
	Frames int
}

func main() { //types:skip
	opts := cli.DefaultOptions("glfwwindow", "Glfwwindow opens a GLFW window with an OpenGL context and runs an event loop until it is closed.")
	cli.Run(opts, &Config{}, Open, Settings)
}

// Open opens the window and runs the event loop until it is closed.
func Open(c *Config) error { //cli:cmd -root
	slog.SetLogLoggerLevel(logx.UserLevel)
	api, s, err := c.WindowSettings()
	if err != nil {
		return err
	}

	lib, err := desktop.Init()
	if err != nil {
		return err
	}
	defer func() {
		errors.Log(lib.Terminate())
	}()

	w, err := lib.NewWindow(api, s)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := glload.Load(w); err != nil {
		return err
	}
	slog.Info("opened window", "title", w.Title(), "size", w.Size(), "opengl", glload.Version())

	for frame := 0; !w.ShouldClose(); frame++ {
		if c.Frames > 0 && frame >= c.Frames {
			break
		}
		glload.Viewport(w.Size())
		glload.Clear(0.1, 0.1, 0.1, 1)
		w.SwapBuffers()
		lib.PollEvents()
	}
	return nil
}

// Settings prints the effective window settings as TOML.
func Settings(c *Config) error {
	_, s, err := c.WindowSettings()
	if err != nil {
		return err
	}
	return window.WriteSettings(os.Stdout, s)
}

// WindowSettings returns the graphics-API version and window settings
// described by the config.
func (c *Config) WindowSettings() (glapi.Version, window.Settings, error) {
	api, err := glapi.Parse(c.OpenGL)
	if err != nil {
		return api, window.Settings{}, err
	}
	if c.SettingsFile != "" {
		s, err := window.OpenSettings(c.SettingsFile)
		return api, s, err
	}
	s := window.NewSettings(c.Title, window.Size{Width: c.Width, Height: c.Height})
	s.SetFullscreen(c.Fullscreen).SetExitOnEsc(c.ExitOnEsc).SetSamples(c.Samples).SetVsync(c.Vsync)
	return api, s, nil
}
