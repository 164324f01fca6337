package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

type courseService struct {
	courseRepository store.CourseRepository

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.courseRepository.ListCourses(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "courseService.ListCourses").Msg("error listing courses")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	return courses, nil
}

func (c *courseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	course, err := c.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("error getting course %d: %w", id, err)
	}

	return course, nil
}

// CreateCourse stores course as owned by the caller and returns its new ID.
func (c *courseService) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	log := logger.FromContext(ctx)

	caller, ok := utils.UserFromContext(ctx)
	if !ok {
		return 0, ErrAccessDenied
	}

	course.ID = 0
	course.UserID = caller.ID
	course.User = nil

	id, err := c.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Str("func", "courseService.CreateCourse").Msg("error creating course")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	log.Info().Str("func", "courseService.CreateCourse").
		Int64("course_id", id).
		Int64("user_id", caller.ID).
		Msg("course created")

	return id, nil
}

// UpdateCourse overwrites course.ID with the caller's changes. The course must
// exist and belong to the caller. Nil optional fields keep their stored values.
func (c *courseService) UpdateCourse(ctx context.Context, course models.Course) error {
	caller, err := c.authorizeOwner(ctx, course.ID)
	if err != nil {
		return err
	}

	course.UserID = caller.ID
	course.User = nil

	if err = c.courseRepository.UpdateCourse(ctx, course); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "courseService.UpdateCourse").
			Int64("course_id", course.ID).
			Msg("error updating course")
		return fmt.Errorf("error updating course %d: %w", course.ID, err)
	}

	return nil
}

func (c *courseService) DeleteCourse(ctx context.Context, id int64) error {
	caller, err := c.authorizeOwner(ctx, id)
	if err != nil {
		return err
	}

	if err = c.courseRepository.DeleteCourse(ctx, id, caller.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "courseService.DeleteCourse").
			Int64("course_id", id).
			Msg("error deleting course")
		return fmt.Errorf("error deleting course %d: %w", id, err)
	}

	return nil
}

// authorizeOwner loads the course and checks that the caller owns it.
// The repository write that follows repeats the owner condition, so a course
// deleted or reassigned in between is reported as store.ErrCourseNotFound.
func (c *courseService) authorizeOwner(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	caller, ok := utils.UserFromContext(ctx)
	if !ok {
		return models.User{}, ErrAccessDenied
	}

	stored, err := c.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting course %d: %w", id, err)
	}

	if stored.UserID != caller.ID {
		log.Warn().Str("func", "courseService.authorizeOwner").
			Int64("course_id", id).
			Int64("owner_id", stored.UserID).
			Int64("user_id", caller.ID).
			Msg("caller does not own the course")
		return models.User{}, ErrNotCourseOwner
	}

	return caller, nil
}
