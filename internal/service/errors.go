// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
)

// ErrValidation is the base class for all request validation failures.
// Every concrete validation error wraps it, so handlers can match the whole
// class with a single errors.Is check.
var ErrValidation = errors.New("validation error")

var (
	// ErrEmptyTitle is returned when title is missing or whitespace-only.
	ErrEmptyTitle = fmt.Errorf("%w: title is required", ErrValidation)

	// ErrEmptyContent is returned when content is missing or
	// whitespace-only.
	ErrEmptyContent = fmt.Errorf("%w: content is required", ErrValidation)

	// ErrEmptyID is returned when an operation targeting a single note is
	// called with an empty identifier.
	ErrEmptyID = fmt.Errorf("%w: note id is required", ErrValidation)
)

// ErrVersionIsNotSpecified is returned when the app info service is
// constructed without a version string.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")
