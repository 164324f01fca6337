// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users and courses in a relational database.
//
// Statements are built with squirrel so the same repositories run on
// PostgreSQL (pgx) and SQLite (go-sqlite3); only the placeholder format and
// the unique-violation detection differ between the two.
package store

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user accounts.
type UserRepository interface {
	// CreateUser inserts user (Password must already be hashed) and returns it
	// with its generated ID. Returns [ErrEmailAlreadyExists] when the email
	// address is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail loads the user with the given email address, including
	// the password hash. Returns [ErrNoUserWasFound] when there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CourseRepository stores courses. Reads join the owning user's public
// fields into [models.Course.User].
type CourseRepository interface {
	// ListCourses returns every course ordered by title. The result is never
	// nil.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// FindCourseByID returns [ErrCourseNotFound] when no course has id.
	FindCourseByID(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse inserts course and returns its generated ID.
	CreateCourse(ctx context.Context, course models.Course) (int64, error)

	// UpdateCourse writes title and description, and each optional field that
	// is non-nil, to the row matching both course.ID and course.UserID.
	// Returns [ErrCourseNotFound] when no such row exists.
	UpdateCourse(ctx context.Context, course models.Course) error

	// DeleteCourse removes the row matching both id and userID. Returns
	// [ErrCourseNotFound] when no such row exists.
	DeleteCourse(ctx context.Context, id, userID int64) error
}
