// SPDX-License-Identifier: MIT
// Package: propslim/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with builderErrorf(method, ...) using %w.
//   • Option constructors panic on meaningless values; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter below the constructor minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrTooLarge indicates a size parameter above the constructor maximum.
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrUnknownShape indicates a name ShapeByName does not know.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrConstructFailed indicates the model rejected an emitted face.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <message>: <err>" keeping err for errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
