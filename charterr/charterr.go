// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charterr defines the errors returned by chartcore packages.
//
// Only programmer errors are reported: data of the wrong shape,
// operations a value does not support, and malformed configuration.
// Degenerate numeric input (empty, NaN, infinite) is never an error.
package charterr

import (
	"fmt"

	"github.com/juju/errors"
)

// shapeError reports data whose dimensionality or length is not
// accepted by an operation.
type shapeError struct {
	errors.Err
}

// Shapef returns an error for data of unsupported shape.
func Shapef(format string, args ...interface{}) error {
	err := &shapeError{errors.NewErr(format+" has unsupported shape", args...)}
	err.SetLocation(1)
	return err
}

// IsShape reports whether the cause of err was created by Shapef.
func IsShape(err error) bool {
	_, ok := errors.Cause(err).(*shapeError)
	return ok
}

// Unsupportedf returns an error for an operation the receiver cannot
// perform, such as reverse-mapping unordered data.
func Unsupportedf(format string, args ...interface{}) error {
	err := errors.NewNotSupported(nil, fmt.Sprintf(format, args...))
	return errors.Trace(err)
}

// IsUnsupported reports whether err was created by Unsupportedf.
func IsUnsupported(err error) bool {
	return errors.IsNotSupported(err)
}

// Configf returns an error for malformed configuration, such as a
// segment map missing a required channel.
func Configf(format string, args ...interface{}) error {
	return errors.NotValidf(format, args...)
}

// IsConfig reports whether err was created by Configf.
func IsConfig(err error) bool {
	return errors.IsNotValid(err)
}

// Annotatef adds context to err, preserving its kind.
func Annotatef(err error, format string, args ...interface{}) error {
	return errors.Annotatef(err, format, args...)
}
