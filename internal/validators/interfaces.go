// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach business
// logic.
//
// Each validator owns an ordered list of rules. A rule pairs one field with
// one go-playground/validator tag and the message reported when the tag
// fails. Every rule is evaluated, so callers receive the full list of
// problems in a single [*ValidationError] instead of the first one only.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields. It returns a [*ValidationError] when any rule fails,
// [ErrUnsupportedType] for values it does not know, and [ErrUnknownField]
// for field names it has no rules for.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
