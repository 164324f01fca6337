package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestCourseValidator(t *testing.T) {
	tests := []struct {
		name     string
		course   any
		expected []string
	}{
		{
			name:   "valid course",
			course: models.Course{Title: "Go", Description: "Learn Go"},
		},
		{
			name:   "optional fields omitted",
			course: &models.Course{Title: "Go", Description: "Learn Go", EstimatedTime: nil},
		},
		{
			name:   "empty course",
			course: models.Course{},
			expected: []string{
				`Please provide a value for "title"`,
				`Please provide a value for "description"`,
			},
		},
		{
			name:     "missing description",
			course:   models.Course{Title: "Go"},
			expected: []string{`Please provide a value for "description"`},
		},
		{
			name:     "nil pointer",
			course:   (*models.Course)(nil),
			expected: []string{`Please provide a value for "title"`, `Please provide a value for "description"`},
		},
	}

	v := NewCourseValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.course)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expected, messagesOf(t, err))
		})
	}
}

func TestCourseValidator_FieldScoping(t *testing.T) {
	v := NewCourseValidator()

	err := v.Validate(context.Background(), models.Course{}, FieldTitle)
	assert.Equal(t, []string{`Please provide a value for "title"`}, messagesOf(t, err))
}

func TestCourseValidator_UnsupportedType(t *testing.T) {
	v := NewCourseValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "course"), ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}
	assert.Equal(t, "a; b", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
