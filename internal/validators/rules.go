package validators

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// rule binds a validator tag on a single named field to the message
// reported when the tag fails.
type rule struct {
	field   string
	tag     string
	message string
}

// ruleSet evaluates every rule independently, so a single field may produce
// several messages.
type ruleSet struct {
	engine *validator.Validate
	rules  []rule
}

func newRuleSet(rules ...rule) ruleSet {
	return ruleSet{
		engine: validator.New(validator.WithRequiredStructEnabled()),
		rules:  rules,
	}
}

func (s ruleSet) has(field string) bool {
	return slices.ContainsFunc(s.rules, func(r rule) bool { return r.field == field })
}

// check runs the rules whose field is listed in fields (all rules when fields
// is empty) against values.
func (s ruleSet) check(values map[string]string, fields ...string) error {
	for _, f := range fields {
		if !s.has(f) {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	var messages []string
	for _, r := range s.rules {
		if len(fields) > 0 && !slices.Contains(fields, r.field) {
			continue
		}

		err := s.engine.Var(values[r.field], r.tag)
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("error evaluating rule %q on %q: %w", r.tag, r.field, err)
		}
		messages = append(messages, r.message)
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

func requiredMessage(field string) string {
	return fmt.Sprintf("Please provide a value for %q", field)
}
