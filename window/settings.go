// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Size is a framebuffer or window size in pixels.
type Size struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// Valid returns whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// IsZero returns whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Settings is the engine-level description of a window to create.
// It is owned by the caller and passed by value to a back-end,
// which never changes it.
type Settings struct {

	// Title is the window caption.
	Title string `toml:"title"`

	// Size is the initial framebuffer size.
	Size Size `toml:"size"`

	// Fullscreen creates a fullscreen window on the primary display
	// instead of a windowed one.
	Fullscreen bool `toml:"fullscreen"`

	// ExitOnEsc requests the window to close when Escape is pressed.
	ExitOnEsc bool `toml:"exit_on_esc"`

	// Samples is the MSAA sample count; 0 disables multisampling.
	Samples uint8 `toml:"samples"`

	// Vsync synchronizes buffer swaps with the display refresh.
	Vsync bool `toml:"vsync"`

	// SRGB requests an sRGB-capable framebuffer.
	SRGB bool `toml:"srgb"`

	// Resizable allows the user to resize the window.
	Resizable bool `toml:"resizable"`

	// Decorated shows the window border and title bar.
	Decorated bool `toml:"decorated"`
}

// NewSettings returns settings with the given title and size and
// default values for everything else.
func NewSettings(title string, size Size) Settings {
	return Settings{
		Title:     title,
		Size:      size,
		SRGB:      true,
		Resizable: true,
		Decorated: true,
	}
}

// SetTitle sets the [Settings.Title].
func (s *Settings) SetTitle(v string) *Settings { s.Title = v; return s }

// SetSize sets the [Settings.Size].
func (s *Settings) SetSize(v Size) *Settings { s.Size = v; return s }

// SetFullscreen sets the [Settings.Fullscreen].
func (s *Settings) SetFullscreen(v bool) *Settings { s.Fullscreen = v; return s }

// SetExitOnEsc sets the [Settings.ExitOnEsc].
func (s *Settings) SetExitOnEsc(v bool) *Settings { s.ExitOnEsc = v; return s }

// SetSamples sets the [Settings.Samples].
func (s *Settings) SetSamples(v uint8) *Settings { s.Samples = v; return s }

// SetVsync sets the [Settings.Vsync].
func (s *Settings) SetVsync(v bool) *Settings { s.Vsync = v; return s }

// SetSRGB sets the [Settings.SRGB].
func (s *Settings) SetSRGB(v bool) *Settings { s.SRGB = v; return s }

// SetResizable sets the [Settings.Resizable].
func (s *Settings) SetResizable(v bool) *Settings { s.Resizable = v; return s }

// SetDecorated sets the [Settings.Decorated].
func (s *Settings) SetDecorated(v bool) *Settings { s.Decorated = v; return s }

// ReadSettings decodes TOML settings from r. Fields missing from
// the input keep the values of [NewSettings].
func ReadSettings(r io.Reader) (Settings, error) {
	s := NewSettings("", Size{})
	if err := toml.NewDecoder(r).Decode(&s); err != nil {
		return s, fmt.Errorf("window: reading settings: %w", err)
	}
	return s, nil
}

// OpenSettings reads TOML settings from the given file.
func OpenSettings(filename string) (Settings, error) {
	f, err := os.Open(filename)
	if err != nil {
		return NewSettings("", Size{}), err
	}
	defer f.Close()
	return ReadSettings(f)
}

// WriteSettings encodes the settings to w as TOML.
func WriteSettings(w io.Writer, s Settings) error {
	return toml.NewEncoder(w).Encode(s)
}
