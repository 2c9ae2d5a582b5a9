// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/worklog-auth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldName         = "name"
	FieldRefreshToken = "refreshToken"

	// FieldPresence checks only that email and password are non-empty,
	// which is all a login attempt needs.
	FieldPresence = "presence"
)

// Limits applied to registration input.
const (
	MaxEmailLength    = 254
	MinPasswordLength = 8
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
	MaxNameLength     = 100
)

// AuthRequestValidator implements [Validator] for the bodies of the
// authentication endpoints: register, login, refresh and logout.
type AuthRequestValidator struct {
}

// NewAuthRequestValidator constructs a new AuthRequestValidator
// and returns it as the Validator interface.
func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. All violations are collected into one
// *[ValidationError]; [ErrUnsupportedType] and [ErrUnknownField] report
// programming errors instead.
func (v *AuthRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RefreshRequest:
		return v.validateRefresh(value, fields...)
	case *models.RefreshRequest:
		return v.validateRefresh(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthRequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if msg := checkEmail(req.Email); msg != "" {
				verr.add(FieldEmail, msg)
			}
		case FieldPassword:
			switch n := len(req.Password); {
			case n < MinPasswordLength:
				verr.add(FieldPassword, "must be at least 8 characters")
			case n > MaxPasswordLength:
				verr.add(FieldPassword, "must be at most 72 bytes")
			}
		case FieldName:
			switch n := utf8.RuneCountInString(strings.TrimSpace(req.Name)); {
			case n == 0:
				verr.add(FieldName, "is required")
			case n > MaxNameLength:
				verr.add(FieldName, "must be at most 100 characters")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *AuthRequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPresence}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldPresence:
			if strings.TrimSpace(req.Email) == "" {
				verr.add(FieldEmail, "is required")
			}
			if req.Password == "" {
				verr.add(FieldPassword, "is required")
			}
		case FieldEmail:
			if msg := checkEmail(req.Email); msg != "" {
				verr.add(FieldEmail, msg)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *AuthRequestValidator) validateRefresh(req models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if strings.TrimSpace(req.RefreshToken) == "" {
				verr.add(FieldRefreshToken, "is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// checkEmail returns a problem description, or "" for a usable address.
// Display-name forms such as "Alice <a@b.c>" are rejected.
func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return "is required"
	case len(email) > MaxEmailLength:
		return "must be at most 254 characters"
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "must be a valid email address"
	}
	if !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "must be a valid email address"
	}

	return ""
}
