package errs

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// UseTagNames makes v report fields by their form tag, falling back to the
// json tag, so validation errors name the keys clients actually send.
func UseTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(tagName)
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// ValidationError converts binding failures into a 400 with one entry per
// offending field, named as registered through UseTagNames.
func ValidationError(err error) *HTTPError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{
				Field: fe.Field(),
				Error: describe(fe),
			})
		}
		return NewBadRequestError("Validation failed", fields)
	}

	var numErr *strconv.NumError
	var jsonErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &jsonErr):
		return NewBadRequestError("Validation failed", []FieldError{{Field: jsonErr.Field, Error: "has the wrong type"}})
	case errors.As(err, &numErr):
		return NewBadRequestError("Validation failed", []FieldError{{Error: fmt.Sprintf("%q is not a number", numErr.Num)}})
	}
	return NewBadRequestError("Malformed request", nil)
}

// FieldsError builds a 400 for fields the caller found missing itself.
func FieldsError(message string, fields ...string) *HTTPError {
	out := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldError{Field: f, Error: "is required"})
	}
	return NewBadRequestError(message, out)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt", "min":
		return "must be greater than " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
