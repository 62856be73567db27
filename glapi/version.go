// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glapi provides the OpenGL version tags used to request
// a graphics context from a windowing back-end.
package glapi

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Version is an OpenGL version that a context can be created for.
type Version int32

const (
	V2_0 Version = iota
	V2_1
	V3_0
	V3_1
	V3_2
	V3_3
	V4_0
	V4_1
	V4_2
	V4_3
	V4_4
	V4_5
)

// Default is the version requested when none is specified.
const Default = V3_2

var versions = [...]struct{ major, minor int }{
	V2_0: {2, 0},
	V2_1: {2, 1},
	V3_0: {3, 0},
	V3_1: {3, 1},
	V3_2: {3, 2},
	V3_3: {3, 3},
	V4_0: {4, 0},
	V4_1: {4, 1},
	V4_2: {4, 2},
	V4_3: {4, 3},
	V4_4: {4, 4},
	V4_5: {4, 5},
}

// Values returns all known versions, in increasing order.
func Values() []Version {
	vs := make([]Version, len(versions))
	for i := range versions {
		vs[i] = Version(i)
	}
	return vs
}

// IsValid returns whether v is a known version.
func (v Version) IsValid() bool {
	return v >= 0 && int(v) < len(versions)
}

// MajorMinor returns the major and minor version numbers.
// It returns 0, 0 for an invalid version.
func (v Version) MajorMinor() (major, minor int) {
	if !v.IsValid() {
		return 0, 0
	}
	mm := versions[v]
	return mm.major, mm.minor
}

// IsCoreProfile returns whether contexts of this version are requested
// with the core profile and forward compatibility, which is the case
// for OpenGL 3.2 and later.
func (v Version) IsCoreProfile() bool {
	return v.IsValid() && v >= V3_2
}

// String returns the version in "major.minor" form.
func (v Version) String() string {
	if !v.IsValid() {
		return fmt.Sprintf("Version(%d)", int32(v))
	}
	major, minor := v.MajorMinor()
	return fmt.Sprintf("%d.%d", major, minor)
}

// SetString sets the version from its "major.minor" form.
// A leading "v" or "V" is accepted, and "_" may be used as the separator,
// so "3.2", "v3.2" and "V3_2" are all equivalent.
func (v *Version) SetString(s string) error {
	t := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "v"), "V")
	t = strings.ReplaceAll(t, "_", ".")
	for i, mm := range versions {
		if t == fmt.Sprintf("%d.%d", mm.major, mm.minor) {
			*v = Version(i)
			return nil
		}
	}
	return fmt.Errorf("glapi: unknown OpenGL version %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, errors.New("glapi: cannot marshal invalid version " + v.String())
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(text []byte) error {
	return v.SetString(string(text))
}

// Parse returns the version for the given text, as accepted by [Version.SetString].
func Parse(s string) (Version, error) {
	var v Version
	err := v.SetString(s)
	return v, err
}
