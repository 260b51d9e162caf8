// Package validation binds request payloads and checks them against the
// rules declared on each request type.
//
// Request types declare their rules with validator tags and run them from
// their own Validate method, so one entity's rules live in one place no
// matter how many routes accept it.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by every request payload.
//
// Validate returns validator.ValidationErrors, CustomValidationErrors, or an
// *errs.HTTPError that should reach the client unchanged.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors uses the first entry's message as the error text.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	if len(c) == 0 {
		return "Validation failed"
	}
	return c[0].Message
}

// phoneNumberPattern is two digits, a dash, then one or more digits.
var phoneNumberPattern = regexp.MustCompile(`^\d{2}-\d+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the names clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			if param := fld.Tag.Get("param"); param != "" {
				return param
			}
			return strings.ToLower(fld.Name)
		}
		return name
	})

	if err := v.RegisterValidation("phonenumber", func(fl validator.FieldLevel) bool {
		return phoneNumberPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct runs the tag rules of s.
func Struct(s any) error {
	return validate.Struct(s)
}

// IsPhoneNumber reports whether number has the NN-digits shape.
func IsPhoneNumber(number string) bool {
	return phoneNumberPattern.MatchString(number)
}
