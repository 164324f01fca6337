package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/models"
)

// Field names accepted by the user validator. They match the JSON keys of
// [models.UserRegistration].
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailAddress = "emailAddress"
	FieldPassword     = "password"
)

// UserValidator checks registration payloads.
type UserValidator struct {
	rules ruleSet
}

// NewUserValidator constructs a [Validator] for [models.UserRegistration].
func NewUserValidator() Validator {
	return &UserValidator{
		rules: newRuleSet(
			rule{field: FieldFirstName, tag: "required", message: requiredMessage(FieldFirstName)},
			rule{field: FieldLastName, tag: "required", message: requiredMessage(FieldLastName)},
			rule{field: FieldEmailAddress, tag: "required", message: requiredMessage(FieldEmailAddress)},
			rule{field: FieldEmailAddress, tag: "email", message: fmt.Sprintf("Please provide a valid email address for %q", FieldEmailAddress)},
			rule{field: FieldPassword, tag: "required", message: requiredMessage(FieldPassword)},
			rule{field: FieldPassword, tag: "min=8,max=20", message: fmt.Sprintf("Please provide a value for %q that is between 8 and 20 characters in length", FieldPassword)},
		),
	}
}

// Validate accepts models.UserRegistration or a pointer to it.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRegistration:
		return v.validateRegistration(value, fields...)
	case *models.UserRegistration:
		if value == nil {
			return v.validateRegistration(models.UserRegistration{}, fields...)
		}
		return v.validateRegistration(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegistration(user models.UserRegistration, fields ...string) error {
	return v.rules.check(map[string]string{
		FieldFirstName:    user.FirstName,
		FieldLastName:     user.LastName,
		FieldEmailAddress: user.EmailAddress,
		FieldPassword:     user.Password,
	}, fields...)
}
