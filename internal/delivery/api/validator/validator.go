// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"printshop/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator reporting JSON field names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe flattens validation errors into "field: rule" messages joined by "; ".
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.TrimPrefix(fieldErr.Namespace(), strings.SplitN(fieldErr.Namespace(), ".", 2)[0]+".")
		if fieldErr.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s: failed %s=%s", field, fieldErr.Tag(), fieldErr.Param()))

			continue
		}
		messages = append(messages, fmt.Sprintf("%s: failed %s", field, fieldErr.Tag()))
	}

	return strings.Join(messages, "; ")
}
