// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the services.
//
// A failed check returns a [*ValidationError] listing every rejected field;
// it matches [ErrValidation] under errors.Is, which the HTTP layer maps to
// 400 Bad Request with the field list as error details.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
