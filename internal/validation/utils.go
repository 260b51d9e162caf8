package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/errs"
)

// BindAndValidate fills payload from the path, query and body, then runs
// its Validate method. Failures come back as 400 *errs.HTTPError values.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	return Validate(payload)
}

// Validate runs payload.Validate and converts the result into an
// *errs.HTTPError.
func Validate(payload Validatable) error {
	return toHTTPError(payload.Validate())
}

// Check runs the tag rules of s and converts failures like Validate does.
func Check(s any) error {
	return toHTTPError(Struct(s))
}

func toHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	message, fieldErrors, ok := extractValidationError(err)
	if !ok {
		return errs.ValidationError(err)
	}
	return errs.NewBadRequestError(message, true, nil, fieldErrors, nil)
}

func bindError(err error) error {
	message := "Invalid request body"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			message = msg
		}
	}

	return errs.NewBadRequestError(message, false, nil, nil, nil)
}

// extractValidationError converts validator and custom errors into field
// errors. The message is the first failure, e.g. "title is required".
func extractValidationError(err error) (string, []errs.FieldError, bool) {
	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		fieldErrors := make([]errs.FieldError, 0, len(customErrors))
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return customErrors.Error(), fieldErrors, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "", nil, false
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: describe(e),
		})
	}

	first := fieldErrors[0]
	return fmt.Sprintf("%s %s", first.Field, first.Error), fieldErrors, true
}

func describe(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "url", "http_url":
		return "must be a valid URL"

	case "uuid":
		return "must be a valid UUID"

	case "phonenumber":
		return "must be a phone number like 09-1234556"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}
