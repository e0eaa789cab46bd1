// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalid marks a configuration rejected by Validate.
var ErrInvalid = errors.New("invalid configuration")

var validate = newValidate()

// newValidate registers the "token" tag: a value without whitespace, as the
// shell splits command lines on whitespace.
func newValidate() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\r\n")
	})
	if err != nil {
		panic(errors.Wrap(err, "register token validation"))
	}

	return v
}

// Validate checks struct tags and reports every violation at once.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalid, "nil config")
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate config")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// formatFieldError renders "log.level must be one of [...] (got: x)".
func formatFieldError(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", path, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", path, fe.Param(), fe.Value())
	case "token":
		return fmt.Sprintf("%s must not contain spaces (got: %q)", path, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", path, fe.Tag())
	}
}

// fieldPath turns "Config.Shell.MaxPaths" into "shell.max_paths".
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}

	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}

	return b.String()
}
