package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-course-catalog/models"
)

var courseColumns = []string{
	"c.id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"u.id",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("first_name", "last_name", "email_address", "password").
		Values(user.FirstName, user.LastName, user.EmailAddress, user.Password).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectUserByEmailQuery selects only the columns authentication needs.
func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("id", "first_name", "last_name", "email_address", "password").
		From("users").
		Where(sq.Eq{"email_address": email}).
		Limit(1).
		ToSql()
}

func selectCourses(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(courseColumns...).
		From("courses c").
		Join("users u ON u.id = c.user_id")
}

func buildSelectCoursesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectCourses(b).
		OrderBy("c.title ASC", "c.id ASC").
		ToSql()
}

func buildSelectCourseByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectCourses(b).
		Where(sq.Eq{"c.id": id}).
		ToSql()
}

func buildInsertCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.Insert("courses").
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateCourseQuery always writes title and description. Optional
// columns are written only when provided, so a nil pointer keeps the stored
// value.
func buildUpdateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	update := b.Update("courses").
		Set("title", course.Title).
		Set("description", course.Description)

	if course.EstimatedTime != nil {
		update = update.Set("estimated_time", *course.EstimatedTime)
	}
	if course.MaterialsNeeded != nil {
		update = update.Set("materials_needed", *course.MaterialsNeeded)
	}

	return update.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": course.ID, "user_id": course.UserID}).
		ToSql()
}

func buildDeleteCourseQuery(b sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return b.Delete("courses").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}
