// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"cogentcore.org/core/base/errors"
)

// Causes of an [InitializationError], for use with [errors.Is].
var (
	ErrInvalidSize           = errors.New("window size must be positive in both dimensions")
	ErrNoDisplay             = errors.New("no display available")
	ErrUnsupportedVersion    = errors.New("unsupported graphics API version")
	ErrLibraryNotInitialized = errors.New("windowing library is not initialized")
)

// InitializationError is returned when a window or its graphics context
// could not be created. Nothing is left allocated when it is returned.
type InitializationError struct {

	// Reason describes what was being attempted.
	Reason string

	// Err is the underlying cause.
	Err error
}

func (e *InitializationError) Error() string {
	if e.Err == nil {
		return "window initialization failed: " + e.Reason
	}
	if e.Reason == "" {
		return "window initialization failed: " + e.Err.Error()
	}
	return "window initialization failed: " + e.Reason + ": " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// NewInitializationError returns an [*InitializationError] with the given
// reason and cause.
func NewInitializationError(reason string, err error) error {
	return &InitializationError{Reason: reason, Err: err}
}

// IsInitializationError returns whether err is or wraps an
// [*InitializationError].
func IsInitializationError(err error) bool {
	var ie *InitializationError
	return errors.As(err, &ie)
}
