package validators

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

// Field names accepted by the course validator.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// CourseValidator checks course payloads on create and update. Optional
// fields (estimatedTime, materialsNeeded) carry no rules.
type CourseValidator struct {
	rules ruleSet
}

func NewCourseValidator() Validator {
	return &CourseValidator{
		rules: newRuleSet(
			rule{field: FieldTitle, tag: "required", message: requiredMessage(FieldTitle)},
			rule{field: FieldDescription, tag: "required", message: requiredMessage(FieldDescription)},
		),
	}
}

func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Course:
		return v.validateCourse(value, fields...)
	case *models.Course:
		if value == nil {
			return v.validateCourse(models.Course{}, fields...)
		}
		return v.validateCourse(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CourseValidator) validateCourse(course models.Course, fields ...string) error {
	return v.rules.check(map[string]string{
		FieldTitle:       course.Title,
		FieldDescription: course.Description,
	}, fields...)
}
