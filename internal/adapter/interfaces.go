// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the course API.
//
// The primary abstraction is [CourseAdapter], which decouples the terminal UI
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPCourseAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CourseAdapter is the read-only view of the course API used by the client.
type CourseAdapter interface {
	// ListCourses fetches GET /api/courses. The result is never nil.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse fetches GET /api/courses/{id}. Returns [ErrNotFound] (wrapped)
	// when the server knows no such course.
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// GetVersion fetches GET /api/version.
	GetVersion(ctx context.Context) (string, error)
}
