// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/service"
)

var (
	// ErrAuthHeaderNotFound is reported when the request carries no usable
	// Basic credentials. It is answered like any other access denial.
	ErrAuthHeaderNotFound = fmt.Errorf("%w: auth header not found", service.ErrAccessDenied)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoCourseMatches answers GET /api/courses/{id} for an unknown id.
	ErrNoCourseMatches = errors.New("no course matches the provided ID")

	// ErrNoExistingCourse answers PUT and DELETE on an unknown id.
	ErrNoExistingCourse = errors.New("there is no existing course with that ID")

	// ErrPanicRecovered wraps the value recovered from a panicking handler.
	ErrPanicRecovered = errors.New("panic recovered")
)
