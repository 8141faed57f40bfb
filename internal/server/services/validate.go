// Package services contains server-side business logic: the credential
// lifecycle (signup/login), the poll, and the text-analysis computation.
package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports structurally invalid input. Fields maps each bad
// field (by its JSON name) to a human-readable message; the HTTP boundary
// surfaces it as the VALIDATION_ERROR envelope with field-level details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation error" }

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs struct validation and converts failures into a
// *ValidationError.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s exceeds the maximum allowed length", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
