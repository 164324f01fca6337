// Package service holds the business rules of the course catalog: account
// registration, credential checks and course ownership.
//
// Services never see HTTP types. The authenticated caller travels in the
// context (see utils.WithUser) and validation is layered on top of the core
// services through the *ServiceWrapper decorators.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

type AuthService interface {
	// RegisterUser hashes the password and stores a new account. The returned
	// user carries the generated ID and no password.
	RegisterUser(ctx context.Context, registration models.UserRegistration) (models.User, error)
	// Authenticate resolves Basic credentials to a user. Every failure that is
	// not a store fault is reported as ErrAccessDenied.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse, UpdateCourse and DeleteCourse act on behalf of the caller
	// stored in ctx. The owner sent by the client is ignored.
	CreateCourse(ctx context.Context, course models.Course) (int64, error)
	UpdateCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// CourseServiceWrapper defines middleware composition for CourseService.
type CourseServiceWrapper interface {
	Wrap(CourseService) CourseService
}
