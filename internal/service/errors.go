package service

import "errors"

var (
	ErrEmailAlreadyInUse = errors.New(`"emailAddress" is already in use`)

	ErrAccessDenied   = errors.New("Access Denied")
	ErrNotCourseOwner = errors.New("authorized user does not own this course")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
