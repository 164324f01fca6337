package service

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

// UserValidationService rejects invalid registrations before they reach the
// wrapped AuthService.
type UserValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewUserValidationService() AuthServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) RegisterUser(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	if err := v.validator.Validate(ctx, registration); err != nil {
		return models.User{}, err
	}

	return v.inner.RegisterUser(ctx, registration)
}

func (v *UserValidationService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return v.inner.Authenticate(ctx, email, password)
}

func (v *UserValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}

// CourseValidationService rejects courses without a title or description
// before the wrapped CourseService looks them up or stores them.
type CourseValidationService struct {
	inner     CourseService
	validator validators.Validator
}

func NewCourseValidationService() CourseServiceWrapper {
	return &CourseValidationService{
		validator: validators.NewCourseValidator(),
	}
}

func (v *CourseValidationService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return v.inner.ListCourses(ctx)
}

func (v *CourseValidationService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return v.inner.GetCourse(ctx, id)
}

func (v *CourseValidationService) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	if err := v.validator.Validate(ctx, course); err != nil {
		return 0, err
	}

	return v.inner.CreateCourse(ctx, course)
}

func (v *CourseValidationService) UpdateCourse(ctx context.Context, course models.Course) error {
	if err := v.validator.Validate(ctx, course); err != nil {
		return err
	}

	return v.inner.UpdateCourse(ctx, course)
}

func (v *CourseValidationService) DeleteCourse(ctx context.Context, id int64) error {
	return v.inner.DeleteCourse(ctx, id)
}

func (v *CourseValidationService) Wrap(wrapper CourseService) CourseService {
	v.inner = wrapper
	return v
}
