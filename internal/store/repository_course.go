package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
)

type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (models.Course, error) {
	var (
		course models.Course
		owner  models.User
	)

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	course.User = &owner
	return course, nil
}

func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCoursesQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error selecting courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning course")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating courses")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

func (r *courseRepository) FindCourseByID(ctx context.Context, id int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCourseByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Course{}, ErrCourseNotFound
	case err != nil:
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Int64("id", id).Msg("error selecting course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCourseQuery(r.db.builder, course)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	query, args, err := buildUpdateCourseQuery(r.db.builder, course)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*courseRepository.UpdateCourse", query, args)
}

func (r *courseRepository) DeleteCourse(ctx context.Context, id, userID int64) error {
	query, args, err := buildDeleteCourseQuery(r.db.builder, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*courseRepository.DeleteCourse", query, args)
}

// execAffectingOne runs a conditional statement and reports
// [ErrCourseNotFound] when its WHERE clause matched nothing.
func (r *courseRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}
